// Package linguistic defines the 7-term ordered risk scale and its triangular
// fuzzy numbers, plus numeric-to-label defuzzification.
package linguistic

import (
	"fmt"
	"strings"
)

// Label is one of the seven ordered risk terms, Unlikely lowest.
type Label int

const (
	Unlikely Label = iota
	VeryLow
	Low
	Medium
	High
	VeryHigh
	ExtremelyHigh
)

// NumLabels is the size of the term set; MaxIndex is the top label's index.
const (
	NumLabels = 7
	MaxIndex  = NumLabels - 1
)

var labelNames = [NumLabels]string{
	"Unlikely", "Very Low", "Low", "Medium", "High", "Very High", "Extremely High",
}

func (l Label) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Label(%d)", int(l))
	}
	return labelNames[l]
}

// Valid reports whether l is within the term set.
func (l Label) Valid() bool {
	return l >= Unlikely && l <= ExtremelyHigh
}

// ParseLabel resolves a label name case-insensitively.
func ParseLabel(s string) (Label, error) {
	trimmed := strings.TrimSpace(s)
	for i, name := range labelNames {
		if strings.EqualFold(trimmed, name) {
			return Label(i), nil
		}
	}
	return 0, fmt.Errorf("unknown risk label %q", s)
}

// MarshalText lets labels travel as their names in JSON payloads.
func (l Label) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("label index %d out of range", int(l))
	}
	return []byte(labelNames[l]), nil
}

func (l *Label) UnmarshalText(b []byte) error {
	parsed, err := ParseLabel(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Labels returns the full term set in ascending order.
func Labels() []Label {
	out := make([]Label, NumLabels)
	for i := range out {
		out[i] = Label(i)
	}
	return out
}

// TFN is a triangular fuzzy number: apex with left and right spreads.
// Support is [Apex-Left, Apex+Right].
type TFN struct {
	Apex  float64 `json:"apex"`
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

// Support returns the interval outside which membership is zero.
func (t TFN) Support() (lo, hi float64) {
	return t.Apex - t.Left, t.Apex + t.Right
}

// Membership is the triangular membership of x: linear ramps to 1 at the apex,
// 0 at and beyond the support edges. The apex itself always yields 1.
func (t TFN) Membership(x float64) float64 {
	lo, hi := t.Support()
	if x == t.Apex {
		return 1.0
	}
	if x <= lo || x >= hi {
		return 0.0
	}
	if x < t.Apex {
		return (x - lo) / (t.Apex - lo)
	}
	return (hi - x) / (hi - t.Apex)
}

// Centroid is the mean of the three vertices (lo, apex, hi). This is the single
// defuzzification reference point; it must be computed from the support
// endpoints rather than from the raw (apex, left, right) triple.
func (t TFN) Centroid() float64 {
	lo, hi := t.Support()
	return (lo + t.Apex + hi) / 3.0
}

// TFN parameters per label, from the source model's published table. The
// supports of consecutive labels overlap so the scale covers [0,1] without
// gaps.
var scale = [NumLabels]TFN{
	Unlikely:      {Apex: 0.0, Left: 0.0, Right: 0.16},
	VeryLow:       {Apex: 0.16, Left: 0.16, Right: 0.18},
	Low:           {Apex: 0.34, Left: 0.18, Right: 0.16},
	Medium:        {Apex: 0.5, Left: 0.16, Right: 0.16},
	High:          {Apex: 0.66, Left: 0.16, Right: 0.18},
	VeryHigh:      {Apex: 0.84, Left: 0.18, Right: 0.16},
	ExtremelyHigh: {Apex: 1.0, Left: 0.16, Right: 0.0},
}

// TFN returns the label's triangular fuzzy number.
func (l Label) TFN() TFN {
	return scale[l]
}

// Membership evaluates x against the label's TFN.
func Membership(l Label, x float64) float64 {
	return scale[l].Membership(x)
}

// Centroid returns the label's defuzzification reference point.
func Centroid(l Label) float64 {
	return scale[l].Centroid()
}

// NearestLabel maps a score to the label whose centroid is closest in squared
// distance. Ties break toward the lower label. Scores outside [0,1] resolve to
// a boundary label.
func NearestLabel(q float64) Label {
	best := Unlikely
	bestDist := -1.0
	for i := 0; i < NumLabels; i++ {
		c := scale[i].Centroid()
		d := (q - c) * (q - c)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = Label(i)
		}
	}
	return best
}
