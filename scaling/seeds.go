package scaling

// Seed is a polarity-anchoring word pattern with a signed weight.
type Seed struct {
	Pattern string  `yaml:"pattern"`
	Weight  float64 `yaml:"weight"`
}

// Seeds is an ordered seed-word set.
type Seeds []Seed

// DefaultSeeds returns the generic sentiment seed set: seven positive and
// seven negative anchors.
func DefaultSeeds() Seeds {
	return Seeds{
		{"good", 1}, {"nice", 1}, {"excellent", 1}, {"positive", 1},
		{"fortunate", 1}, {"correct", 1}, {"superior", 1},
		{"bad", -1}, {"nasty", -1}, {"poor", -1}, {"negative", -1},
		{"unfortunate", -1}, {"wrong", -1}, {"inferior", -1},
	}
}

// Patterns returns the seed patterns in order.
func (s Seeds) Patterns() []string {
	patterns := make([]string, len(s))
	for i, seed := range s {
		patterns[i] = seed.Pattern
	}
	return patterns
}
