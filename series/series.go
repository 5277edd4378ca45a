package series

import (
	"sort"
	"time"
)

// Point is a dated scalar observation.
type Point struct {
	Date  time.Time
	Value float64
}

// Series is a date-ordered sequence of observations.
type Series []Point

// New creates a series from points, sorted by date.
func New(points []Point) Series {
	s := make(Series, len(points))
	copy(s, points)
	sort.SliceStable(s, func(i, j int) bool { return s[i].Date.Before(s[j].Date) })
	return s
}

// FromValues pairs dates with values into a sorted series.
func FromValues(dates []time.Time, values []float64) Series {
	points := make([]Point, len(values))
	for i := range values {
		points[i] = Point{Date: dates[i], Value: values[i]}
	}
	return New(points)
}

// Dates returns the observation dates in order.
func (s Series) Dates() []time.Time {
	dates := make([]time.Time, len(s))
	for i := range s {
		dates[i] = s[i].Date
	}
	return dates
}

// Values returns the observation values in order.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i := range s {
		values[i] = s[i].Value
	}
	return values
}

// MergeByDay averages observations sharing a calendar day (UTC).
func (s Series) MergeByDay() Series {
	type bucket struct {
		sum   float64
		count int
	}
	buckets := map[time.Time]*bucket{}
	for _, p := range s {
		day := time.Date(p.Date.Year(), p.Date.Month(), p.Date.Day(), 0, 0, 0, 0, time.UTC)
		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
		}
		b.sum += p.Value
		b.count++
	}
	points := make([]Point, 0, len(buckets))
	for day, b := range buckets {
		points = append(points, Point{Date: day, Value: b.sum / float64(b.count)})
	}
	return New(points)
}

// Align returns the subsets of both series sharing observation dates,
// in date order.
func Align(a, b Series) (Series, Series) {
	index := make(map[time.Time]bool, len(b))
	for _, p := range b {
		index[p.Date] = true
	}
	var alignedA Series
	shared := make(map[time.Time]bool)
	for _, p := range a {
		if index[p.Date] {
			alignedA = append(alignedA, p)
			shared[p.Date] = true
		}
	}
	var alignedB Series
	for _, p := range b {
		if shared[p.Date] {
			alignedB = append(alignedB, p)
		}
	}
	return alignedA, alignedB
}
