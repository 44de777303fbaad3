package dispersal

import "math"

// Category is the seed-production regime a trait record falls into. Exactly
// one category applies; the checks run in a fixed priority order with the
// low-seed-count regime (Category I) dominant.
type Category int

const (
	CategoryI Category = iota + 1
	CategoryII
	CategoryIII
	CategoryIV
)

func (c Category) String() string {
	switch c {
	case CategoryI:
		return "I"
	case CategoryII:
		return "II"
	case CategoryIII:
		return "III"
	case CategoryIV:
		return "IV"
	default:
		return "?"
	}
}

// MarshalText serializes the category as its roman numeral.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Category thresholds from the source model.
const (
	lowSeedCount     = 200
	moderateSeedRain = 20000
	moderateViabilit = 120
	highSeedRain     = 100000
	highSeedCount    = 100
)

// Modifier exponents: >1 concentrates a membership toward 0, <1 dilates it
// toward 1.
const (
	sfConcentration  = 6.0
	sfDilation       = 0.5
	viaConcentration = 7.35
)

// Classify assigns the trait record to its category. Category I is checked
// before Category II: when both guards hold, the low-seed-count regime wins.
func Classify(t Traits) Category {
	switch {
	case t.SeedsPerFruit <= lowSeedCount:
		return CategoryI
	case t.AnnualSeedRain <= moderateSeedRain && t.ViabilityMo <= moderateViabilit && t.SeedsPerFruit <= lowSeedCount:
		return CategoryII
	case t.AnnualSeedRain >= highSeedRain && t.SeedsPerFruit >= highSeedCount:
		return CategoryIII
	default:
		return CategoryIV
	}
}

// Apply returns the memberships with the category's concentration/dilation
// operators applied. Category IV passes everything through unchanged.
func (c Category) Apply(m Memberships) Memberships {
	out := m
	switch c {
	case CategoryI:
		out.SF = math.Pow(m.SF, sfConcentration)
	case CategoryII:
		out.SF = math.Pow(m.SF, sfDilation)
		out.VIA = math.Pow(m.VIA, viaConcentration)
	case CategoryIII:
		out.SF = math.Pow(m.SF, sfDilation)
	}
	return out
}
