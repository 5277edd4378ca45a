package corpus

import (
	"testing"
	"time"

	"github.com/sentiscale/sentiscale/schema"
)

func newTestCorpus() *Corpus {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return New([]schema.Document{
		{ID: "d1", Text: "Markets fell. Investors panicked.", Date: day},
		{ID: "d2", Text: "A calm day.", Date: day.AddDate(0, 0, 1)},
	})
}

func TestCorpus_Get(t *testing.T) {
	c := newTestCorpus()
	doc, ok := c.Get("d2")
	if !ok {
		t.Fatal("expected d2 to exist")
	}
	if doc.Text != "A calm day." {
		t.Errorf("unexpected text %q", doc.Text)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("expected missing lookup to fail")
	}
}

func TestCorpus_Reshape(t *testing.T) {
	c := newTestCorpus()
	sentences := c.Reshape()
	if sentences.Size() != 3 {
		t.Fatalf("expected 3 sentences, got %d", sentences.Size())
	}
	first, ok := sentences.Get("d1#s0")
	if !ok {
		t.Fatal("expected sentence d1#s0")
	}
	if first.Text != "Markets fell." {
		t.Errorf("unexpected sentence text %q", first.Text)
	}
	if !first.Date.Equal(c.Documents()[0].Date) {
		t.Error("sentence should inherit parent date")
	}
	if parent, _ := first.Metadata["parent"].(string); parent != "d1" {
		t.Errorf("unexpected parent %q", parent)
	}
}
