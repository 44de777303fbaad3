// Package dispersal converts the four numeric dispersal traits into a fuzzy
// risk score: per-trait membership, category-conditioned modifiers, then a
// Hamacher intersection.
package dispersal

// Traits is the raw dispersal trait record for one species.
type Traits struct {
	SeedsPerFruit  float64 `json:"sf"`
	AnnualSeedRain float64 `json:"asr"`
	ViabilityMo    float64 `json:"via"`
	LDDStrength    float64 `json:"ldd"`
}

// Clamped returns a copy with negatives floored at 0 and LDD held to [0,10],
// so the membership functions stay on their designed domains.
func (t Traits) Clamped() Traits {
	c := t
	if c.SeedsPerFruit < 0 {
		c.SeedsPerFruit = 0
	}
	if c.AnnualSeedRain < 0 {
		c.AnnualSeedRain = 0
	}
	if c.ViabilityMo < 0 {
		c.ViabilityMo = 0
	}
	if c.LDDStrength < 0 {
		c.LDDStrength = 0
	}
	if c.LDDStrength > 10 {
		c.LDDStrength = 10
	}
	return c
}

// Memberships holds the four membership degrees, raw or category-adjusted.
type Memberships struct {
	SF  float64 `json:"sf"`
	ASR float64 `json:"asr"`
	VIA float64 `json:"via"`
	LDD float64 `json:"ldd"`
}

// SeedFruitMembership is membership in "few seeds per fruit": 1 below one
// seed, quadratic decay through the 501 midpoint, 0 from 1001 on.
func SeedFruitMembership(x float64) float64 {
	switch {
	case x < 1:
		return 1.0
	case x <= 501:
		d := (x - 1) / 1000
		return 1 - 2*d*d
	case x <= 1001:
		d := (x - 1001) / 1000
		return 2 * d * d
	default:
		return 0.0
	}
}

// SeedRainMembership is membership in "light annual seed rain", three
// quadratic regimes anchored to baseline offsets 0.75, 0.45 and 0 so the
// function is continuous and non-increasing up to 10^7 seeds/m².
func SeedRainMembership(x float64) float64 {
	switch {
	case x < 0:
		return 1.0
	case x < 1e4:
		d := 1e4 - x
		return 2*d*d/8e8 + 0.75
	case x < 1e5:
		d := 1e5 - x
		return 2*d*d/5.4e10 + 0.45
	case x <= 1e7:
		d := 1e7 - x
		return 2 * d * d / 4.356e14
	default:
		return 0.0
	}
}

// ViabilityMembership is membership in "short-lived seeds": 1 under 3 months,
// quadratic decay with a concavity change at 602 months, 0 past 1200.
func ViabilityMembership(x float64) float64 {
	switch {
	case x < 3:
		return 1.0
	case x < 602:
		d := x - 3
		return 1 - 2*d*d/2376060
	case x <= 1200:
		d := 1200 - x
		return 2 * d * d / 1028572
	default:
		return 0.0
	}
}

// StrengthMembership is membership in "weak long-distance dispersal" on the
// 0–10 scale, with regime breaks at 2 and 5.
func StrengthMembership(x float64) float64 {
	switch {
	case x < 0:
		return 1.0
	case x < 2:
		return 1 - 2*x*x/160
	case x < 5:
		d := x - 2
		return 0.95 - 2*d*d/60
	case x <= 10:
		d := 10 - x
		return 2 * d * d / 77
	default:
		return 0.0
	}
}

// Evaluate computes the raw membership degrees for a trait record.
func Evaluate(t Traits) Memberships {
	return Memberships{
		SF:  SeedFruitMembership(t.SeedsPerFruit),
		ASR: SeedRainMembership(t.AnnualSeedRain),
		VIA: ViabilityMembership(t.ViabilityMo),
		LDD: StrengthMembership(t.LDDStrength),
	}
}
