package token

import (
	"strings"
	"unicode"
)

// Tokenizer splits document text into word tokens.
type Tokenizer struct {
	lowercase     bool
	removePunct   bool
	removeNumbers bool
	stopwords     map[string]bool
}

// Option configures the Tokenizer.
type Option func(*Tokenizer)

// WithPunctuation keeps punctuation tokens.
func WithPunctuation() Option {
	return func(t *Tokenizer) { t.removePunct = false }
}

// WithoutNumbers drops tokens consisting entirely of digits.
func WithoutNumbers() Option {
	return func(t *Tokenizer) { t.removeNumbers = true }
}

// WithCase preserves the original character case.
func WithCase() Option {
	return func(t *Tokenizer) { t.lowercase = false }
}

// WithStopwords removes the built-in English stopwords plus any extras.
func WithStopwords(extra ...string) Option {
	return func(t *Tokenizer) {
		t.stopwords = make(map[string]bool, len(englishStopwords)+len(extra))
		for _, w := range englishStopwords {
			t.stopwords[w] = true
		}
		for _, w := range extra {
			t.stopwords[strings.ToLower(w)] = true
		}
	}
}

// New creates a tokenizer. By default tokens are lowercased and
// punctuation tokens are removed.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{
		lowercase:   true,
		removePunct: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize splits text into word tokens, applying the configured filters.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var sb strings.Builder

	flush := func() {
		if sb.Len() == 0 {
			return
		}
		tok := sb.String()
		sb.Reset()
		if t.lowercase {
			tok = strings.ToLower(tok)
		}
		// Trim trailing connectors left by the intra-word rule
		tok = strings.TrimRight(tok, "'-")
		if tok == "" {
			return
		}
		if t.removeNumbers && isNumeric(tok) {
			return
		}
		if t.stopwords != nil && t.stopwords[strings.ToLower(tok)] {
			return
		}
		tokens = append(tokens, tok)
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		case r == '\'' || r == '-':
			// Keep intra-word apostrophes and hyphens
			if sb.Len() > 0 {
				sb.WriteRune(r)
			}
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			if !t.removePunct {
				tokens = append(tokens, string(r))
			}
		}
	}
	flush()
	return tokens
}

// TokenizeAll tokenizes a batch of texts.
func (t *Tokenizer) TokenizeAll(texts []string) [][]string {
	result := make([][]string, len(texts))
	for i, text := range texts {
		result[i] = t.Tokenize(text)
	}
	return result
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' && r != ',' && r != '-' {
			return false
		}
	}
	return true
}
