package scaling

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/sentiscale/sentiscale/corpus"
	"github.com/sentiscale/sentiscale/dfm"
	"github.com/sentiscale/sentiscale/matching"
	"github.com/sentiscale/sentiscale/matching/option"
	"github.com/sentiscale/sentiscale/token"
)

// Model maps vocabulary terms to polarity coefficients learned from seed
// words in a latent semantic space.
type Model struct {
	Query string
	Dim   int
	terms map[string]float64
}

// Coefficient pairs a term with its polarity coefficient.
type Coefficient struct {
	Term string
	Beta float64
}

// Score is a per-document model score.
type Score struct {
	ID   string
	Date time.Time
	// Raw is the count-weighted mean coefficient of matched terms
	Raw float64
	// Std is Raw standardized over the scored set
	Std float64
}

// Fit learns polarity coefficients from a sentence-level corpus. The corpus
// is expected to be sentence segmented (corpus.Reshape); the vocabulary is
// restricted to alphanumeric terms above the frequency floor, candidates are
// ranked by keyness against the topic query's context, and coefficients are
// seed-weighted cosine similarities in a truncated SVD term space.
func Fit(c *corpus.Corpus, tokenizer *token.Tokenizer, seeds Seeds, opts ...Option) (*Model, error) {
	options := NewOptions(opts...)
	if len(seeds) == 0 {
		seeds = DefaultSeeds()
	}
	if c.Size() == 0 {
		return nil, fmt.Errorf("scaling: empty corpus")
	}

	pattern, err := regexp.Compile(options.TermPattern)
	if err != nil {
		return nil, fmt.Errorf("scaling: invalid term pattern: %w", err)
	}

	tokens := tokenizer.TokenizeAll(c.Texts())
	m := dfm.FromTokens(c.IDs(), c.Dates(), tokens).
		Keep(pattern).
		Trim(options.MinTermFreq, 0)
	if m.NTerms() == 0 {
		return nil, fmt.Errorf("scaling: empty vocabulary after filtering (min term freq %d)", options.MinTermFreq)
	}

	candidates := candidateTerms(tokens, m, options)

	// Seed columns always participate, whatever their keyness
	seedCols := map[int]float64{}
	for _, seed := range seeds {
		matcher := matching.New(option.WithPatterns(seed.Pattern))
		for _, col := range matcher.Expand(m.Vocab()) {
			seedCols[col] = seed.Weight
		}
	}
	if len(seedCols) == 0 {
		return nil, fmt.Errorf("scaling: no seed terms present in the fitted vocabulary")
	}

	vectors, dim, err := termVectors(m, options.Dim)
	if err != nil {
		return nil, err
	}

	type anchor struct {
		vector []float64
		weight float64
	}
	anchors := make([]anchor, 0, len(seedCols))
	for col, weight := range seedCols {
		anchors = append(anchors, anchor{vector: vectors[col], weight: weight})
	}

	include := map[int]bool{}
	for _, col := range candidates {
		include[col] = true
	}
	for col := range seedCols {
		include[col] = true
	}

	cols := make([]int, 0, len(include))
	for col := range include {
		cols = append(cols, col)
	}
	sort.Ints(cols)

	betas := make([]float64, len(cols))
	for i, col := range cols {
		var num, den float64
		for _, a := range anchors {
			num += a.weight * cosine(vectors[col], a.vector)
			den += math.Abs(a.weight)
		}
		if den > 0 {
			betas[i] = num / den
		}
	}
	betas = standardize(betas)

	vocab := m.Vocab()
	terms := make(map[string]float64, len(cols))
	for i, col := range cols {
		terms[vocab[col]] = betas[i]
	}
	return &Model{Query: options.Query, Dim: dim, terms: terms}, nil
}

// candidateTerms ranks the vocabulary by keyness of occurrence inside the
// query's context windows and returns the strongest positive associations.
func candidateTerms(tokens [][]string, m *dfm.Matrix, options *Options) []int {
	query := matching.New(option.WithPatterns(options.Query))
	inside := make([]float64, m.NTerms())
	outside := make([]float64, m.NTerms())
	var insideTotal, outsideTotal float64

	for _, docTokens := range tokens {
		marked := make([]bool, len(docTokens))
		for i, tok := range docTokens {
			if !query.Matches(tok) {
				continue
			}
			lo := i - options.Window
			if lo < 0 {
				lo = 0
			}
			hi := i + options.Window
			if hi >= len(docTokens) {
				hi = len(docTokens) - 1
			}
			for j := lo; j <= hi; j++ {
				marked[j] = true
			}
		}
		for i, tok := range docTokens {
			col := m.TermIndex(tok)
			if col < 0 {
				continue
			}
			if marked[i] {
				inside[col]++
				insideTotal++
			} else {
				outside[col]++
				outsideTotal++
			}
		}
	}

	type ranked struct {
		col   int
		score float64
	}
	scores := make([]ranked, 0, m.NTerms())
	for col := 0; col < m.NTerms(); col++ {
		score := ChiSquared(inside[col], outside[col], insideTotal, outsideTotal)
		if score > 0 {
			scores = append(scores, ranked{col: col, score: score})
		}
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	limit := options.TopTerms
	if limit > len(scores) {
		limit = len(scores)
	}
	cols := make([]int, limit)
	for i := 0; i < limit; i++ {
		cols[i] = scores[i].col
	}
	return cols
}

// termVectors embeds every vocabulary term via truncated SVD of the
// log-weighted matrix: term vectors are rows of V scaled by the singular
// values.
func termVectors(m *dfm.Matrix, dim int) ([][]float64, int, error) {
	dense := m.Weight(dfm.WeightLogCount).Dense()
	if dense == nil {
		return nil, 0, fmt.Errorf("scaling: matrix is empty")
	}
	var svd mat.SVD
	if ok := svd.Factorize(dense, mat.SVDThin); !ok {
		return nil, 0, fmt.Errorf("scaling: SVD failed to converge")
	}
	var v mat.Dense
	svd.VTo(&v)
	sigma := svd.Values(nil)
	if dim > len(sigma) {
		dim = len(sigma)
	}

	vectors := make([][]float64, m.NTerms())
	for col := 0; col < m.NTerms(); col++ {
		vector := make([]float64, dim)
		for j := 0; j < dim; j++ {
			vector[j] = v.At(col, j) * sigma[j]
		}
		vectors[col] = vector
	}
	return vectors, dim, nil
}

// Predict projects documents onto the learned polarity scale: the
// count-weighted mean coefficient of matched terms, standardized over the
// scored set. Documents with no matched terms score 0 raw.
func (m *Model) Predict(matrix *dfm.Matrix) []Score {
	ids := matrix.IDs()
	dates := matrix.Dates()
	vocab := matrix.Vocab()

	betas := make([]float64, matrix.NTerms())
	matched := make([]bool, matrix.NTerms())
	for col, term := range vocab {
		if beta, ok := m.terms[term]; ok {
			betas[col] = beta
			matched[col] = true
		}
	}

	scores := make([]Score, matrix.NDocs())
	raw := make([]float64, matrix.NDocs())
	for doc := 0; doc < matrix.NDocs(); doc++ {
		var num, den float64
		for col, count := range matrix.Row(doc) {
			if !matched[col] {
				continue
			}
			num += count * betas[col]
			den += count
		}
		if den > 0 {
			raw[doc] = num / den
		}
		scores[doc] = Score{ID: ids[doc], Date: dates[doc], Raw: raw[doc]}
	}
	std := standardize(raw)
	for doc := range scores {
		scores[doc].Std = std[doc]
	}
	return scores
}

// Beta returns the coefficient of a term.
func (m *Model) Beta(term string) (float64, bool) {
	beta, ok := m.terms[term]
	return beta, ok
}

// Len returns the number of scored terms.
func (m *Model) Len() int {
	return len(m.terms)
}

// Coefficients returns all term coefficients, strongest positive first.
func (m *Model) Coefficients() []Coefficient {
	out := make([]Coefficient, 0, len(m.terms))
	for term, beta := range m.terms {
		out = append(out, Coefficient{Term: term, Beta: beta})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Beta == out[j].Beta {
			return out[i].Term < out[j].Term
		}
		return out[i].Beta > out[j].Beta
	})
	return out
}

// Head returns the n most positive terms.
func (m *Model) Head(n int) []Coefficient {
	all := m.Coefficients()
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

// Tail returns the n most negative terms, strongest first.
func (m *Model) Tail(n int) []Coefficient {
	all := m.Coefficients()
	if n > len(all) {
		n = len(all)
	}
	out := make([]Coefficient, n)
	for i := 0; i < n; i++ {
		out[i] = all[len(all)-1-i]
	}
	return out
}

func cosine(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}

func standardize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) < 2 {
		return out
	}
	mean, sd := stat.MeanStdDev(values, nil)
	if sd == 0 || math.IsNaN(sd) {
		return out
	}
	for i, v := range values {
		out[i] = (v - mean) / sd
	}
	return out
}
