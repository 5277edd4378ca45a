package service

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
corpus:
  url: /data/news.jsonl
  textField: body
  dateLayout: "2006-01-02"
dictionary:
  url: /data/lsd.yml
scaling:
  query: econom*
  minTermFreq: 5
  topTerms: 500
  seeds:
    - pattern: good
      weight: 1
    - pattern: bad
      weight: -1
store:
  dsn: /data/scores.sqlite
plot:
  url: /data/sentiment.png
  referenceDate: "2020-03-11"
  span: 0.2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "news" {
		t.Errorf("expected derived name news, got %q", cfg.Name)
	}
	if cfg.Corpus.TextField != "body" {
		t.Errorf("unexpected text field %q", cfg.Corpus.TextField)
	}
	if len(cfg.Scaling.Seeds) != 2 || cfg.Scaling.Seeds[1].Weight != -1 {
		t.Errorf("unexpected seeds %+v", cfg.Scaling.Seeds)
	}
	if !cfg.ScalingEnabled() {
		t.Error("scaling should default to enabled")
	}
	reference, err := cfg.Plot.Reference()
	if err != nil {
		t.Fatalf("Reference failed: %v", err)
	}
	if reference.Format("2006-01-02") != "2020-03-11" {
		t.Errorf("unexpected reference %v", reference)
	}
}

func TestLoadConfig_RequiresCorpus(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("name: x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for missing corpus url")
	}
}

func TestLoadConfig_ScalingDisabled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "corpus:\n  url: /data/news.jsonl\nscaling:\n  enabled: false\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.ScalingEnabled() {
		t.Error("scaling should be disabled")
	}
}
