package dictionary

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/sentiscale/sentiscale/dfm"
)

// Counts holds per-document matched pattern counts for both categories.
type Counts struct {
	Positive []float64
	Negative []float64
}

// Score is a per-document sentiment score.
type Score struct {
	ID   string
	Date time.Time
	// Raw is (positive - negative) / (total terms + 1)
	Raw float64
	// Std is Raw standardized to zero mean, unit variance over the corpus
	Std float64
}

// Lookup counts matched positive and negative terms per document. A term
// matched by several patterns within a category is counted once per category.
func (d *Dictionary) Lookup(m *dfm.Matrix) Counts {
	vocab := m.Vocab()
	positive := d.positive.Expand(vocab)
	negative := d.negative.Expand(vocab)

	counts := Counts{
		Positive: make([]float64, m.NDocs()),
		Negative: make([]float64, m.NDocs()),
	}
	for doc := 0; doc < m.NDocs(); doc++ {
		row := m.Row(doc)
		for _, col := range positive {
			counts.Positive[doc] += row[col]
		}
		for _, col := range negative {
			counts.Negative[doc] += row[col]
		}
	}
	return counts
}

// Score computes the normalized sentiment score per document: the difference
// of matched counts over total terms, with a +1 denominator guard so that
// zero-term documents score exactly 0, then standardized across the corpus.
func (d *Dictionary) Score(m *dfm.Matrix) []Score {
	counts := d.Lookup(m)
	ids := m.IDs()
	dates := m.Dates()

	scores := make([]Score, m.NDocs())
	raw := make([]float64, m.NDocs())
	for doc := 0; doc < m.NDocs(); doc++ {
		raw[doc] = (counts.Positive[doc] - counts.Negative[doc]) / (m.RowSum(doc) + 1)
		scores[doc] = Score{ID: ids[doc], Date: dates[doc], Raw: raw[doc]}
	}

	std := Standardize(raw)
	for doc := range scores {
		scores[doc].Std = std[doc]
	}
	return scores
}

// Standardize rescales values to zero mean and unit sample variance. When the
// variance is zero the standardized values are all zero.
func Standardize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	mean, sd := stat.MeanStdDev(values, nil)
	if sd == 0 || len(values) < 2 {
		return out
	}
	for i, v := range values {
		out[i] = (v - mean) / sd
	}
	return out
}
