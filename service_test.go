package sentiscale

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestScore(t *testing.T) {
	dir := t.TempDir()
	corpusPath := filepath.Join(dir, "news.jsonl")
	corpus := `{"id":"a","text":"A good and excellent outcome.","date":"2024-05-01"}
{"id":"b","text":"A bad outcome.","date":"2024-05-02"}
`
	if err := os.WriteFile(corpusPath, []byte(corpus), 0644); err != nil {
		t.Fatal(err)
	}
	dictPath := filepath.Join(dir, "dict.yml")
	dict := "positive:\n  - good\n  - excellent\nnegative:\n  - bad\n"
	if err := os.WriteFile(dictPath, []byte(dict), 0644); err != nil {
		t.Fatal(err)
	}

	scores, err := Score(context.Background(), corpusPath, dictPath)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(scores))
	}
	if scores[0].Raw <= 0 || scores[1].Raw >= 0 {
		t.Errorf("unexpected polarity: %v vs %v", scores[0].Raw, scores[1].Raw)
	}
}
