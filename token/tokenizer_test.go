package token

import (
	"reflect"
	"testing"
)

func TestTokenizer_Tokenize(t *testing.T) {
	testCases := []struct {
		name     string
		options  []Option
		text     string
		expected []string
	}{
		{
			name:     "Empty text",
			text:     "",
			expected: nil,
		},
		{
			name:     "Lowercase and punctuation removal by default",
			text:     "Stocks rallied, then FELL.",
			expected: []string{"stocks", "rallied", "then", "fell"},
		},
		{
			name:     "Punctuation kept",
			options:  []Option{WithPunctuation()},
			text:     "Up 3%, down!",
			expected: []string{"up", "3", "%", ",", "down", "!"},
		},
		{
			name:     "Numbers removed",
			options:  []Option{WithoutNumbers()},
			text:     "GDP grew 3.5 percent in 2024",
			expected: []string{"gdp", "grew", "percent", "in"},
		},
		{
			name:     "Stopwords removed",
			options:  []Option{WithStopwords()},
			text:     "the market was very strong",
			expected: []string{"market", "strong"},
		},
		{
			name:     "Extra stopwords",
			options:  []Option{WithStopwords("market")},
			text:     "the market was strong",
			expected: []string{"strong"},
		},
		{
			name:     "Case preserved",
			options:  []Option{WithCase()},
			text:     "Fed raises Rates",
			expected: []string{"Fed", "raises", "Rates"},
		},
		{
			name:     "Intra-word apostrophe and hyphen",
			text:     "the market's year-end rally",
			expected: []string{"the", "market's", "year-end", "rally"},
		},
		{
			name:     "Trailing apostrophe trimmed",
			text:     "workers' wages",
			expected: []string{"workers", "wages"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tok := New(tc.options...)
			got := tok.Tokenize(tc.text)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Tokenize(%q) = %v, expected %v", tc.text, got, tc.expected)
			}
		})
	}
}

func TestTokenizer_TokenizeAll(t *testing.T) {
	tok := New()
	got := tok.TokenizeAll([]string{"one two", "three"})
	if len(got) != 2 || len(got[0]) != 2 || len(got[1]) != 1 {
		t.Fatalf("TokenizeAll returned %v", got)
	}
}
