package scaling

import "math"

// ChiSquared computes the signed chi-squared keyness statistic for a term
// from its 2x2 contingency table: occurrences inside/outside the target
// partition against the partition totals. Yates continuity correction is
// applied. The sign is positive when the term is relatively more frequent
// inside the target.
func ChiSquared(inside, outside, insideTotal, outsideTotal float64) float64 {
	a := inside
	b := insideTotal - inside
	c := outside
	d := outsideTotal - outside
	n := a + b + c + d
	if n == 0 {
		return 0
	}
	denom := (a + b) * (c + d) * (a + c) * (b + d)
	if denom == 0 {
		return 0
	}
	diff := math.Abs(a*d-b*c) - n/2
	if diff < 0 {
		diff = 0
	}
	chi2 := n * diff * diff / denom
	if insideTotal > 0 && outsideTotal > 0 && a/insideTotal < c/outsideTotal {
		return -chi2
	}
	return chi2
}
