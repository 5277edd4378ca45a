package series

import (
	"math"
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestSeries_New(t *testing.T) {
	s := New([]Point{
		{Date: day(2), Value: 2},
		{Date: day(0), Value: 0},
		{Date: day(1), Value: 1},
	})
	for i := range s {
		if s[i].Value != float64(i) {
			t.Fatalf("series not sorted by date: %v", s)
		}
	}
}

func TestSeries_MergeByDay(t *testing.T) {
	base := day(0)
	s := New([]Point{
		{Date: base.Add(1 * time.Hour), Value: 1},
		{Date: base.Add(5 * time.Hour), Value: 3},
		{Date: day(1), Value: 10},
	})
	merged := s.MergeByDay()
	if len(merged) != 2 {
		t.Fatalf("expected 2 days, got %d", len(merged))
	}
	if merged[0].Value != 2 {
		t.Errorf("expected day average 2, got %v", merged[0].Value)
	}
	if !merged[0].Date.Equal(base) {
		t.Errorf("expected truncated day %v, got %v", base, merged[0].Date)
	}
}

func TestAlign(t *testing.T) {
	a := New([]Point{{Date: day(0), Value: 1}, {Date: day(1), Value: 2}, {Date: day(2), Value: 3}})
	b := New([]Point{{Date: day(1), Value: 20}, {Date: day(2), Value: 30}, {Date: day(3), Value: 40}})
	alignedA, alignedB := Align(a, b)
	if len(alignedA) != 2 || len(alignedB) != 2 {
		t.Fatalf("expected 2 shared dates, got %d/%d", len(alignedA), len(alignedB))
	}
	for i := range alignedA {
		if !alignedA[i].Date.Equal(alignedB[i].Date) {
			t.Errorf("aligned dates differ at %d", i)
		}
	}
}

func TestSeries_Lowess(t *testing.T) {
	// A straight line must be reproduced exactly by local linear fits
	var points []Point
	for i := 0; i < 20; i++ {
		points = append(points, Point{Date: day(i), Value: 2*float64(i) + 1})
	}
	smoothed := New(points).Lowess(0.5)
	if len(smoothed) != 20 {
		t.Fatalf("expected 20 points, got %d", len(smoothed))
	}
	for i, p := range smoothed {
		expected := 2*float64(i) + 1
		if math.Abs(p.Value-expected) > 1e-6 {
			t.Errorf("point %d = %v, expected %v", i, p.Value, expected)
		}
	}
}

func TestSeries_LowessDampensNoise(t *testing.T) {
	var points []Point
	for i := 0; i < 40; i++ {
		noise := 1.0
		if i%2 == 0 {
			noise = -1.0
		}
		points = append(points, Point{Date: day(i), Value: noise})
	}
	smoothed := New(points).Lowess(0.5)
	var maxAbs float64
	for _, p := range smoothed {
		if abs := math.Abs(p.Value); abs > maxAbs {
			maxAbs = abs
		}
	}
	if maxAbs > 0.5 {
		t.Errorf("expected smoothing to dampen alternating noise, max |v| = %v", maxAbs)
	}
}

func TestSeries_LowessEdgeCases(t *testing.T) {
	if got := (Series{}).Lowess(0.2); got != nil {
		t.Errorf("empty series should smooth to nil, got %v", got)
	}
	single := New([]Point{{Date: day(0), Value: 5}})
	smoothed := single.Lowess(0.2)
	if len(smoothed) != 1 || smoothed[0].Value != 5 {
		t.Errorf("single point should be unchanged, got %v", smoothed)
	}
}
