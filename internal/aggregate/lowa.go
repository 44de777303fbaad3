package aggregate

import (
	"fmt"
	"math"
	"sort"

	"github.com/EcoSentry/FloraRisk/internal/linguistic"
)

// LOWA aggregates linguistic labels with quantifier-derived, rank-dependent
// weights. Under the Mean sentinel it reduces to the rounded index mean; for
// threshold quantifiers it runs the ordered recursive convex combination over
// the indices sorted descending. Rounding is half-to-even throughout.
func LOWA(labels []linguistic.Label, q Quantifier) (linguistic.Label, error) {
	n := len(labels)
	if n == 0 {
		return 0, fmt.Errorf("cannot aggregate zero labels")
	}
	for _, l := range labels {
		if !l.Valid() {
			return 0, fmt.Errorf("label index %d out of range", int(l))
		}
	}

	if q.IsMean() {
		var sum int
		for _, l := range labels {
			sum += int(l)
		}
		k := int(math.RoundToEven(float64(sum) / float64(n)))
		return linguistic.Label(k), nil
	}

	idxs := make([]int, n)
	for i, l := range labels {
		idxs[i] = int(l)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(idxs)))

	w, err := q.Weights(n)
	if err != nil {
		return 0, err
	}

	cur := idxs[0]
	for i := 1; i < n; i++ {
		cur = combine(cur, idxs[i], w[i-1])
	}
	return linguistic.Label(cur), nil
}

// combine is the symbolic pair operator: s_c ⊙ s_v at weight w gives
// s_k with k = min(top, c + round(w·(v−c))).
func combine(c, v int, w float64) int {
	k := c + int(math.RoundToEven(w*float64(v-c)))
	if k > linguistic.MaxIndex {
		k = linguistic.MaxIndex
	}
	return k
}

// Weighted pairs a relative-importance label with a value label for LWA.
type Weighted struct {
	Importance linguistic.Label
	Value      linguistic.Label
}

// LWA pre-transforms each pair with the min operator, then hands the
// resulting labels to LOWA under the same quantifier.
func LWA(pairs []Weighted, q Quantifier) (linguistic.Label, error) {
	if len(pairs) == 0 {
		return 0, fmt.Errorf("cannot aggregate zero pairs")
	}
	labels := make([]linguistic.Label, len(pairs))
	for i, p := range pairs {
		if !p.Importance.Valid() || !p.Value.Valid() {
			return 0, fmt.Errorf("pair %d has an out-of-range label", i)
		}
		labels[i] = min(p.Importance, p.Value)
	}
	return LOWA(labels, q)
}
