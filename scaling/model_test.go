package scaling

import (
	"context"
	"testing"
	"time"

	"github.com/sentiscale/sentiscale/corpus"
	"github.com/sentiscale/sentiscale/dfm"
	"github.com/sentiscale/sentiscale/schema"
	"github.com/sentiscale/sentiscale/token"
)

// fitTestCorpus builds a small sentence corpus where "growth" co-occurs with
// the positive seed and "crisis" with the negative one, plus off-topic
// sentences so the keyness contrast is defined.
func fitTestCorpus() *corpus.Corpus {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var docs []schema.Document
	add := func(id, text string) {
		docs = append(docs, schema.Document{ID: id, Text: text, Date: day})
		day = day.AddDate(0, 0, 1)
	}
	for i := 0; i < 4; i++ {
		add("p"+string(rune('0'+i)), "economy good growth")
		add("n"+string(rune('0'+i)), "economy bad crisis")
		add("o"+string(rune('0'+i)), "weather rain today")
	}
	return corpus.New(docs)
}

func fitTestModel(t *testing.T) *Model {
	t.Helper()
	seeds := Seeds{{Pattern: "good", Weight: 1}, {Pattern: "bad", Weight: -1}}
	model, err := Fit(fitTestCorpus(), token.New(), seeds,
		WithMinTermFreq(2), WithTopTerms(10), WithDim(5))
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	return model
}

func TestFit(t *testing.T) {
	model := fitTestModel(t)
	if model.Len() < 4 {
		t.Fatalf("expected at least 4 scored terms, got %d", model.Len())
	}

	good, ok := model.Beta("good")
	if !ok {
		t.Fatal("expected coefficient for seed term good")
	}
	bad, ok := model.Beta("bad")
	if !ok {
		t.Fatal("expected coefficient for seed term bad")
	}
	if good <= bad {
		t.Errorf("expected beta(good)=%v > beta(bad)=%v", good, bad)
	}

	growth, _ := model.Beta("growth")
	crisis, _ := model.Beta("crisis")
	if growth <= crisis {
		t.Errorf("expected beta(growth)=%v > beta(crisis)=%v", growth, crisis)
	}

	if head := model.Head(1); len(head) != 1 || head[0].Beta <= 0 {
		t.Errorf("unexpected head %v", head)
	}
	if tail := model.Tail(1); len(tail) != 1 || tail[0].Beta >= 0 {
		t.Errorf("unexpected tail %v", tail)
	}
}

func TestFit_Errors(t *testing.T) {
	tok := token.New()
	if _, err := Fit(corpus.New(nil), tok, nil); err == nil {
		t.Error("expected error for empty corpus")
	}

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := corpus.New([]schema.Document{
		{ID: "d1", Text: "alpha beta alpha beta", Date: day},
		{ID: "d2", Text: "alpha beta gamma gamma", Date: day},
	})
	seeds := Seeds{{Pattern: "absent", Weight: 1}}
	if _, err := Fit(c, tok, seeds, WithMinTermFreq(2)); err == nil {
		t.Error("expected error when no seed terms survive filtering")
	}

	if _, err := Fit(c, tok, nil, WithMinTermFreq(100)); err == nil {
		t.Error("expected error for empty vocabulary")
	}
}

func TestModel_Predict(t *testing.T) {
	model := fitTestModel(t)
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	c := corpus.New([]schema.Document{
		{ID: "up", Text: "economy growth growth good", Date: day},
		{ID: "down", Text: "economy crisis crisis bad", Date: day.AddDate(0, 0, 1)},
		{ID: "none", Text: "zebra quartz", Date: day.AddDate(0, 0, 2)},
	})
	m := dfm.Build(c, token.New())
	scores := model.Predict(m)
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	if scores[0].Raw <= scores[1].Raw {
		t.Errorf("expected up (%v) > down (%v)", scores[0].Raw, scores[1].Raw)
	}
	if scores[2].Raw != 0 {
		t.Errorf("document with no matched terms should score 0 raw, got %v", scores[2].Raw)
	}
	if scores[0].Date != day {
		t.Errorf("scores must carry document dates, got %v", scores[0].Date)
	}
}

func TestModel_SaveLoad(t *testing.T) {
	model := fitTestModel(t)
	URL := t.TempDir() + "/model.bin"
	ctx := context.Background()
	if err := model.Save(ctx, URL); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	restored, err := Load(ctx, URL)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if restored.Len() != model.Len() {
		t.Fatalf("restored %d terms, expected %d", restored.Len(), model.Len())
	}
	if restored.Query != model.Query {
		t.Errorf("restored query %q, expected %q", restored.Query, model.Query)
	}
	want, _ := model.Beta("growth")
	got, ok := restored.Beta("growth")
	if !ok || got != want {
		t.Errorf("restored beta(growth) = %v/%v, expected %v", got, ok, want)
	}
}
