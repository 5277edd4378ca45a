package render

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sentiscale/sentiscale/series"
)

func TestRenderer_Comparison(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var a, b []series.Point
	for i := 0; i < 30; i++ {
		a = append(a, series.Point{Date: day.AddDate(0, 0, i), Value: float64(i % 5)})
		b = append(b, series.Point{Date: day.AddDate(0, 0, i), Value: float64(-(i % 3))})
	}
	named := map[string]series.Series{
		"dictionary": series.New(a),
		"model":      series.New(b),
	}

	location := filepath.Join(t.TempDir(), "sentiment.png")
	r := New(WithTitle("Test"), WithReference(day.AddDate(0, 0, 15)), WithSpan(0.3))
	if err := r.Comparison(location, named, []string{"dictionary", "model"}); err != nil {
		t.Fatalf("Comparison failed: %v", err)
	}
	info, err := os.Stat(location)
	if err != nil {
		t.Fatalf("expected plot file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestRenderer_ComparisonEmpty(t *testing.T) {
	r := New()
	if err := r.Comparison("out.png", nil, nil); err == nil {
		t.Error("expected error for empty input")
	}
}
