package dfm

import (
	"math"
	"regexp"

	"gonum.org/v1/gonum/mat"
)

// WeightScheme names a cell weighting transform.
type WeightScheme string

const (
	// WeightCount leaves raw counts in place
	WeightCount WeightScheme = "count"
	// WeightProp row-normalizes counts to proportions
	WeightProp WeightScheme = "prop"
	// WeightLogCount maps non-zero counts to 1+log(count)
	WeightLogCount WeightScheme = "logcount"
)

// Trim drops terms whose corpus frequency or document frequency falls under
// the given thresholds. Thresholds of zero or less are ignored.
func (m *Matrix) Trim(minTermFreq, minDocFreq int) *Matrix {
	colSums := m.ColSums()
	docFreq := m.DocFreq()
	keep := make([]int, 0, len(m.vocab))
	for col := range m.vocab {
		if minTermFreq > 0 && colSums[col] < float64(minTermFreq) {
			continue
		}
		if minDocFreq > 0 && docFreq[col] < minDocFreq {
			continue
		}
		keep = append(keep, col)
	}
	return m.Select(keep)
}

// Keep retains only terms matching the given pattern.
func (m *Matrix) Keep(pattern *regexp.Regexp) *Matrix {
	keep := make([]int, 0, len(m.vocab))
	for col, term := range m.vocab {
		if pattern.MatchString(term) {
			keep = append(keep, col)
		}
	}
	return m.Select(keep)
}

// Select returns a column subset of the matrix, re-interning the vocabulary.
// Document rows, IDs and dates are preserved.
func (m *Matrix) Select(columns []int) *Matrix {
	remap := make(map[int]int, len(columns))
	vocab := make([]string, 0, len(columns))
	index := make(map[string]int, len(columns))
	for newCol, col := range columns {
		remap[col] = newCol
		vocab = append(vocab, m.vocab[col])
		index[m.vocab[col]] = newCol
	}
	rows := make([]map[int]float64, len(m.rows))
	for i, row := range m.rows {
		newRow := make(map[int]float64)
		for col, v := range row {
			if newCol, ok := remap[col]; ok {
				newRow[newCol] = v
			}
		}
		rows[i] = newRow
	}
	return &Matrix{
		vocab: vocab,
		index: index,
		rows:  rows,
		ids:   m.ids,
		dates: m.dates,
	}
}

// Weight returns a copy of the matrix with the given weighting applied.
func (m *Matrix) Weight(scheme WeightScheme) *Matrix {
	rows := make([]map[int]float64, len(m.rows))
	for i, row := range m.rows {
		newRow := make(map[int]float64, len(row))
		switch scheme {
		case WeightProp:
			sum := m.RowSum(i)
			for col, v := range row {
				if sum > 0 {
					newRow[col] = v / sum
				}
			}
		case WeightLogCount:
			for col, v := range row {
				newRow[col] = 1 + math.Log(v)
			}
		default:
			for col, v := range row {
				newRow[col] = v
			}
		}
		rows[i] = newRow
	}
	return &Matrix{
		vocab: m.vocab,
		index: m.index,
		rows:  rows,
		ids:   m.ids,
		dates: m.dates,
	}
}

// Dense materializes the matrix as a gonum dense matrix (documents × terms).
func (m *Matrix) Dense() *mat.Dense {
	if len(m.rows) == 0 || len(m.vocab) == 0 {
		return nil
	}
	dense := mat.NewDense(len(m.rows), len(m.vocab), nil)
	for i, row := range m.rows {
		for col, v := range row {
			dense.Set(i, col, v)
		}
	}
	return dense
}
