package series

import "math"

// Lowess smooths the series with locally weighted linear regression using
// tricube weights. span is the fraction of points in each local window
// (clamped to (0, 1]); the returned series covers the same dates.
func (s Series) Lowess(span float64) Series {
	n := len(s)
	if n == 0 {
		return nil
	}
	if span <= 0 || span > 1 {
		span = 0.2
	}
	k := int(math.Ceil(span * float64(n)))
	if k < 2 {
		k = 2
	}
	if k > n {
		k = n
	}

	x := make([]float64, n)
	y := make([]float64, n)
	for i, p := range s {
		x[i] = float64(p.Date.Unix()) / 86400.0
		y[i] = p.Value
	}

	out := make(Series, n)
	for i := 0; i < n; i++ {
		lo, hi := window(x, i, k)
		dmax := math.Max(x[i]-x[lo], x[hi]-x[i])
		var sw, swx, swy, swxx, swxy float64
		for j := lo; j <= hi; j++ {
			w := 1.0
			if dmax > 0 {
				d := math.Abs(x[j]-x[i]) / dmax
				if d >= 1 {
					continue
				}
				w = math.Pow(1-d*d*d, 3)
			}
			sw += w
			swx += w * x[j]
			swy += w * y[j]
			swxx += w * x[j] * x[j]
			swxy += w * x[j] * y[j]
		}
		fitted := y[i]
		if sw > 0 {
			det := sw*swxx - swx*swx
			if math.Abs(det) > 1e-12 {
				beta := (sw*swxy - swx*swy) / det
				alpha := (swy - beta*swx) / sw
				fitted = alpha + beta*x[i]
			} else {
				fitted = swy / sw
			}
		}
		out[i] = Point{Date: s[i].Date, Value: fitted}
	}
	return out
}

// window returns the bounds of the k nearest neighbours of x[i] in the
// sorted abscissa slice.
func window(x []float64, i, k int) (int, int) {
	lo, hi := i, i
	for hi-lo+1 < k {
		switch {
		case lo == 0:
			hi++
		case hi == len(x)-1:
			lo--
		case x[i]-x[lo-1] <= x[hi+1]-x[i]:
			lo--
		default:
			hi++
		}
	}
	return lo, hi
}
