package matching

import (
	"path/filepath"
	"strings"

	"github.com/sentiscale/sentiscale/matching/option"
)

// Matcher resolves glob word patterns against vocabulary terms.
// Patterns support the quanteda-style glob value type: '*' matches any run
// of characters, '?' matches a single character.
type Matcher struct {
	options *option.Options
	exact   map[string]bool
	globs   []string
}

// Option defines a functional option for configuring the Matcher
type Option = option.Option

// New creates a new word-pattern matcher with the given options
func New(opts ...option.Option) *Matcher {
	options := option.NewOptions(opts...)
	matcher := &Matcher{
		options: options,
		exact:   make(map[string]bool),
	}
	for _, pattern := range options.Patterns {
		pattern = strings.TrimSpace(pattern)
		// Skip comments or empty lines
		if pattern == "" || strings.HasPrefix(pattern, "#") {
			continue
		}
		if !options.CaseSensitive {
			pattern = strings.ToLower(pattern)
		}
		if strings.ContainsAny(pattern, "*?") {
			matcher.globs = append(matcher.globs, pattern)
			continue
		}
		matcher.exact[pattern] = true
	}
	return matcher
}

// Matches checks if a term matches any of the patterns
func (m *Matcher) Matches(term string) bool {
	if !m.options.CaseSensitive {
		term = strings.ToLower(term)
	}
	if m.exact[term] {
		return true
	}
	for _, pattern := range m.globs {
		// Words carry no path separators, so filepath.Match implements the
		// glob contract directly.
		if matched, _ := filepath.Match(pattern, term); matched {
			return true
		}
	}
	return false
}

// Expand returns the indices of vocabulary terms matched by any pattern,
// each term at most once, in vocabulary order.
func (m *Matcher) Expand(vocab []string) []int {
	var matched []int
	for i, term := range vocab {
		if m.Matches(term) {
			matched = append(matched, i)
		}
	}
	return matched
}

// Size returns the number of compiled patterns
func (m *Matcher) Size() int {
	return len(m.exact) + len(m.globs)
}
