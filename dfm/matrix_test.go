package dfm

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/sentiscale/sentiscale/corpus"
	"github.com/sentiscale/sentiscale/schema"
	"github.com/sentiscale/sentiscale/token"
)

func buildTestMatrix() *Matrix {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := corpus.New([]schema.Document{
		{ID: "d1", Text: "good good market", Date: day},
		{ID: "d2", Text: "bad market crash", Date: day.AddDate(0, 0, 1)},
		{ID: "d3", Text: "", Date: day.AddDate(0, 0, 2)},
	})
	return Build(c, token.New())
}

func TestBuild(t *testing.T) {
	m := buildTestMatrix()
	if m.NDocs() != 3 {
		t.Fatalf("expected 3 docs, got %d", m.NDocs())
	}
	if m.NTerms() != 4 {
		t.Fatalf("expected 4 terms, got %d: %v", m.NTerms(), m.Vocab())
	}
	if got := m.Count(0, m.TermIndex("good")); got != 2 {
		t.Errorf("expected count 2 for good in d1, got %v", got)
	}
	if got := m.RowSum(2); got != 0 {
		t.Errorf("expected empty row for d3, got %v", got)
	}
	sums := m.ColSums()
	if got := sums[m.TermIndex("market")]; got != 2 {
		t.Errorf("expected market corpus count 2, got %v", got)
	}
	if got := m.TermFrequency("good"); got != 2 {
		t.Errorf("expected term frequency 2 for good, got %v", got)
	}
	if got := m.TermFrequency("absent"); got != 0 {
		t.Errorf("expected 0 for unknown term, got %v", got)
	}
}

func TestMatrix_Trim(t *testing.T) {
	m := buildTestMatrix()
	trimmed := m.Trim(2, 0)
	if trimmed.NTerms() != 2 {
		t.Fatalf("expected 2 terms after trim, got %d: %v", trimmed.NTerms(), trimmed.Vocab())
	}
	if trimmed.TermIndex("crash") != -1 {
		t.Error("crash should have been trimmed")
	}
	if trimmed.NDocs() != 3 {
		t.Error("trim must preserve document rows")
	}

	byDocFreq := m.Trim(0, 2)
	if byDocFreq.NTerms() != 1 || byDocFreq.TermIndex("market") == -1 {
		t.Errorf("expected only market with docfreq >= 2, got %v", byDocFreq.Vocab())
	}
}

func TestMatrix_Keep(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := corpus.New([]schema.Document{
		{ID: "d1", Text: "year-end rally q3 2024", Date: day},
	})
	m := Build(c, token.New())
	kept := m.Keep(regexp.MustCompile(`^[a-z0-9]+$`))
	if kept.TermIndex("year-end") != -1 {
		t.Error("hyphenated term should be dropped")
	}
	if kept.TermIndex("rally") == -1 || kept.TermIndex("q3") == -1 {
		t.Errorf("alphanumeric terms should remain, got %v", kept.Vocab())
	}
}

func TestMatrix_Weight(t *testing.T) {
	m := buildTestMatrix()
	prop := m.Weight(WeightProp)
	if got := prop.Count(0, m.TermIndex("good")); got < 0.66 || got > 0.67 {
		t.Errorf("expected 2/3 proportion, got %v", got)
	}
	logged := m.Weight(WeightLogCount)
	if got := logged.Count(0, m.TermIndex("market")); got != 1 {
		t.Errorf("expected 1+log(1)=1, got %v", got)
	}
	if got := logged.Count(2, 0); got != 0 {
		t.Errorf("zero cells stay zero, got %v", got)
	}
}

func TestMatrix_Snapshot(t *testing.T) {
	m := buildTestMatrix()
	dir := t.TempDir()
	URL := dir + "/matrix.bin"
	ctx := context.Background()
	if err := m.Save(ctx, URL); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	restored, err := Load(ctx, URL)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if restored.NDocs() != m.NDocs() || restored.NTerms() != m.NTerms() {
		t.Fatalf("restored shape %dx%d, expected %dx%d",
			restored.NDocs(), restored.NTerms(), m.NDocs(), m.NTerms())
	}
	if got := restored.Count(0, restored.TermIndex("good")); got != 2 {
		t.Errorf("restored count mismatch: %v", got)
	}
	if !restored.Dates()[1].Equal(m.Dates()[1]) {
		t.Error("restored dates mismatch")
	}
}

func TestMatrix_Dense(t *testing.T) {
	m := buildTestMatrix()
	dense := m.Dense()
	r, c := dense.Dims()
	if r != m.NDocs() || c != m.NTerms() {
		t.Fatalf("dense dims %dx%d", r, c)
	}
	if got := dense.At(0, m.TermIndex("good")); got != 2 {
		t.Errorf("dense cell mismatch: %v", got)
	}
}
