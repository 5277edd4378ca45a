package option

import (
	"bufio"
	"io"
	"strings"
)

// Options provides common configuration options for word-pattern matching
type Options struct {

	// Patterns contains glob word patterns to match terms against
	Patterns []string

	// CaseSensitive disables case folding of patterns and terms
	CaseSensitive bool
}

// NewOptions creates a new Options instance with default values
func NewOptions(opts ...Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// Option is a function that modifies Options
type Option func(*Options)

// WithPatterns adds word patterns
func WithPatterns(patterns ...string) Option {
	return func(o *Options) {
		o.Patterns = append(o.Patterns, patterns...)
	}
}

// WithCaseSensitive disables case folding
func WithCaseSensitive() Option {
	return func(o *Options) {
		o.CaseSensitive = true
	}
}

// WithReader adds patterns from a reader, one per line
func WithReader(reader io.Reader) Option {
	return func(o *Options) {
		if patterns := parsePatterns(reader); len(patterns) > 0 {
			o.Patterns = append(o.Patterns, patterns...)
		}
	}
}

// parsePatterns reads line-separated patterns from a reader
func parsePatterns(reader io.Reader) []string {
	var patterns []string
	scanner := bufio.NewScanner(reader)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}

	return patterns
}
