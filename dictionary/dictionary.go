package dictionary

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/sentiscale/sentiscale/matching"
	"github.com/sentiscale/sentiscale/matching/option"
)

// Dictionary holds the positive and negative word-pattern sets used for
// polarity lookup. Patterns follow the glob value type ('*', '?').
type Dictionary struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`

	positive *matching.Matcher
	negative *matching.Matcher
}

// New creates a dictionary from in-memory pattern lists.
func New(positive, negative []string) *Dictionary {
	d := &Dictionary{Positive: positive, Negative: negative}
	d.compile()
	return d
}

// Load reads a YAML dictionary from the given URL.
func Load(ctx context.Context, URL string) (*Dictionary, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary %s: %w", URL, err)
	}
	return Parse(data)
}

// Parse decodes a YAML dictionary.
func Parse(data []byte) (*Dictionary, error) {
	d := &Dictionary{}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary: %w", err)
	}
	if len(d.Positive) == 0 && len(d.Negative) == 0 {
		return nil, fmt.Errorf("dictionary has no positive or negative patterns")
	}
	d.compile()
	return d, nil
}

func (d *Dictionary) compile() {
	d.positive = matching.New(option.WithPatterns(d.Positive...))
	d.negative = matching.New(option.WithPatterns(d.Negative...))
}
