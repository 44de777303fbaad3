// Package aggregate implements the symbolic linguistic aggregation operators:
// quantifier-driven weight generation, LOWA, LWA and the expert-model
// quantifier selection rule.
package aggregate

import "fmt"

// Quantifier is a tagged fuzzy-majority quantifier: either the Mean sentinel
// or a soft threshold pair (a, b) with 0 <= a <= b <= 1.
type Quantifier struct {
	mean bool
	a, b float64
}

// Mean is the equal-weight sentinel. It never goes through the threshold
// function.
func Mean() Quantifier {
	return Quantifier{mean: true}
}

// Threshold builds a soft-majority quantifier from its bounds.
func Threshold(a, b float64) (Quantifier, error) {
	if a < 0 || b > 1 || a > b {
		return Quantifier{}, fmt.Errorf("invalid quantifier bounds (%v, %v)", a, b)
	}
	return Quantifier{a: a, b: b}, nil
}

// Most is the canonical "most" profile (0.3, 0.8).
func Most() Quantifier {
	return Quantifier{a: 0.3, b: 0.8}
}

// AtLeastHalf is the canonical "at least half" profile (0, 0.5).
func AtLeastHalf() Quantifier {
	return Quantifier{a: 0.0, b: 0.5}
}

// IsMean reports whether this is the equal-weight sentinel.
func (q Quantifier) IsMean() bool {
	return q.mean
}

// Bounds returns the threshold pair. Meaningless for the Mean sentinel.
func (q Quantifier) Bounds() (a, b float64) {
	return q.a, q.b
}

func (q Quantifier) String() string {
	switch {
	case q.mean:
		return "mean"
	case q.a == 0.3 && q.b == 0.8:
		return "most"
	case q.a == 0.0 && q.b == 0.5:
		return "at least half"
	default:
		return fmt.Sprintf("Q(%g,%g)", q.a, q.b)
	}
}

// value is the Yager relative quantifier Q(r). When a == b the ramp collapses
// and everything at or past the threshold counts fully.
func (q Quantifier) value(r float64) float64 {
	switch {
	case r < q.a:
		return 0.0
	case r > q.b:
		return 1.0
	case q.a == q.b:
		return 1.0
	default:
		return (r - q.a) / (q.b - q.a)
	}
}

// Weights derives n rank weights from the quantifier: w_i = Q(i/n) − Q((i−1)/n),
// normalized to sum to 1. A zero raw sum (degenerate bounds) falls back to
// uniform weights rather than failing.
func (q Quantifier) Weights(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("quantifier weights need n > 0, got %d", n)
	}
	w := make([]float64, n)
	if q.mean {
		for i := range w {
			w[i] = 1.0 / float64(n)
		}
		return w, nil
	}

	var sum float64
	for i := 1; i <= n; i++ {
		w[i-1] = q.value(float64(i)/float64(n)) - q.value(float64(i-1)/float64(n))
		sum += w[i-1]
	}
	if sum == 0 {
		for i := range w {
			w[i] = 1.0 / float64(n)
		}
		return w, nil
	}
	for i := range w {
		w[i] /= sum
	}
	return w, nil
}
