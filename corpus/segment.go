package corpus

import (
	"strings"
	"unicode"

	"github.com/sentiscale/sentiscale/document"
)

// Segmenter splits document text into sentence fragments.
type Segmenter struct {
	abbreviations map[string]bool
}

// NewSegmenter creates a sentence segmenter with common English
// abbreviation guards.
func NewSegmenter() *Segmenter {
	abbreviations := map[string]bool{
		"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
		"sr": true, "jr": true, "st": true, "vs": true, "etc": true,
		"inc": true, "ltd": true, "corp": true, "co": true,
		"e.g": true, "i.e": true, "u.s": true, "u.k": true, "u.n": true,
		"jan": true, "feb": true, "mar": true, "apr": true, "jun": true,
		"jul": true, "aug": true, "sep": true, "sept": true, "oct": true,
		"nov": true, "dec": true, "no": true, "vol": true, "fig": true,
	}
	return &Segmenter{abbreviations: abbreviations}
}

// Split divides text into sentence fragments
func (s *Segmenter) Split(text string) document.Fragments {
	fragments := make(document.Fragments, 0)
	if strings.TrimSpace(text) == "" {
		return fragments
	}

	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if r == '.' && !s.isBoundary(runes, i) {
			continue
		}
		// Include trailing terminal punctuation and closing quotes
		end := i + 1
		for end < len(runes) && (runes[end] == '.' || runes[end] == '!' || runes[end] == '?' ||
			runes[end] == '"' || runes[end] == '\'' || runes[end] == ')') {
			end++
		}
		if fragment := s.fragment(text, runes, start, end); fragment != nil {
			fragments = append(fragments, fragment)
		}
		i = end - 1
		start = end
	}
	if fragment := s.fragment(text, runes, start, len(runes)); fragment != nil {
		fragments = append(fragments, fragment)
	}
	return fragments
}

// isBoundary reports whether the period at index i terminates a sentence
func (s *Segmenter) isBoundary(runes []rune, i int) bool {
	// Decimal number guard: digit on both sides
	if i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
		return false
	}
	// Abbreviation guard: word immediately before the period
	wordStart := i
	for wordStart > 0 && (unicode.IsLetter(runes[wordStart-1]) || runes[wordStart-1] == '.') {
		wordStart--
	}
	word := strings.ToLower(strings.TrimSuffix(string(runes[wordStart:i]), "."))
	if s.abbreviations[word] {
		return false
	}
	// Single capital initial, e.g. "George W. Bush"
	if len(word) == 1 && unicode.IsUpper(runes[i-1]) {
		return false
	}
	return true
}

func (s *Segmenter) fragment(text string, runes []rune, start, end int) *document.Fragment {
	if start >= end {
		return nil
	}
	segment := strings.TrimSpace(string(runes[start:end]))
	if segment == "" {
		return nil
	}
	// Fragment offsets are byte positions into the original text
	byteStart := len(string(runes[:start]))
	byteEnd := len(string(runes[:end]))
	// Skip the leading whitespace inside the span
	byteStart += strings.Index(text[byteStart:byteEnd], segment[:1])
	return &document.Fragment{Start: byteStart, End: byteEnd}
}
