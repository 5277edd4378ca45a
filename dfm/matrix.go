package dfm

import (
	"time"

	"github.com/sentiscale/sentiscale/corpus"
	"github.com/sentiscale/sentiscale/token"
)

// Matrix is a sparse document-feature matrix: per-document term counts over
// an interned vocabulary. Row order follows corpus order.
type Matrix struct {
	vocab []string
	index map[string]int
	rows  []map[int]float64
	ids   []string
	dates []time.Time
}

// Build tokenizes a corpus and counts term occurrences per document.
func Build(c *corpus.Corpus, tokenizer *token.Tokenizer) *Matrix {
	docs := c.Documents()
	ids := make([]string, len(docs))
	dates := make([]time.Time, len(docs))
	tokens := make([][]string, len(docs))
	for i := range docs {
		ids[i] = docs[i].ID
		dates[i] = docs[i].Date
		tokens[i] = tokenizer.Tokenize(docs[i].Text)
	}
	return FromTokens(ids, dates, tokens)
}

// FromTokens builds a matrix from pre-tokenized documents.
func FromTokens(ids []string, dates []time.Time, tokens [][]string) *Matrix {
	m := &Matrix{
		index: make(map[string]int),
		rows:  make([]map[int]float64, len(tokens)),
		ids:   ids,
		dates: dates,
	}
	for i, docTokens := range tokens {
		row := make(map[int]float64, len(docTokens))
		for _, tok := range docTokens {
			col, ok := m.index[tok]
			if !ok {
				col = len(m.vocab)
				m.index[tok] = col
				m.vocab = append(m.vocab, tok)
			}
			row[col]++
		}
		m.rows[i] = row
	}
	return m
}

// NDocs returns the number of documents (rows).
func (m *Matrix) NDocs() int { return len(m.rows) }

// NTerms returns the vocabulary size (columns).
func (m *Matrix) NTerms() int { return len(m.vocab) }

// Vocab returns the vocabulary in column order.
func (m *Matrix) Vocab() []string { return m.vocab }

// IDs returns document identifiers in row order.
func (m *Matrix) IDs() []string { return m.ids }

// Dates returns document dates in row order.
func (m *Matrix) Dates() []time.Time { return m.dates }

// TermIndex returns the column of a term, or -1.
func (m *Matrix) TermIndex(term string) int {
	if col, ok := m.index[term]; ok {
		return col
	}
	return -1
}

// Count returns the count for a document/term cell.
func (m *Matrix) Count(doc, term int) float64 {
	return m.rows[doc][term]
}

// Row returns the sparse counts of one document.
func (m *Matrix) Row(doc int) map[int]float64 {
	return m.rows[doc]
}

// RowSum returns the total term count of one document.
func (m *Matrix) RowSum(doc int) float64 {
	var sum float64
	for _, v := range m.rows[doc] {
		sum += v
	}
	return sum
}

// RowSums returns per-document total term counts.
func (m *Matrix) RowSums() []float64 {
	sums := make([]float64, len(m.rows))
	for i := range m.rows {
		sums[i] = m.RowSum(i)
	}
	return sums
}

// TermFrequency returns the corpus-wide count of a term, 0 when absent.
func (m *Matrix) TermFrequency(term string) float64 {
	col, ok := m.index[term]
	if !ok {
		return 0
	}
	var sum float64
	for _, row := range m.rows {
		sum += row[col]
	}
	return sum
}

// ColSums returns per-term corpus-wide counts.
func (m *Matrix) ColSums() []float64 {
	sums := make([]float64, len(m.vocab))
	for _, row := range m.rows {
		for col, v := range row {
			sums[col] += v
		}
	}
	return sums
}

// DocFreq returns per-term document frequencies.
func (m *Matrix) DocFreq() []int {
	freq := make([]int, len(m.vocab))
	for _, row := range m.rows {
		for col := range row {
			freq[col]++
		}
	}
	return freq
}
