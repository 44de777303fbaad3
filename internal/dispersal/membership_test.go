package dispersal

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSeedFruitMembership(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 1.0},
		{0.5, 1.0},
		{1, 1.0},
		{251, 0.875},
		{501, 0.5},
		{751, 0.125},
		{1001, 0.0},
		{1500, 0.0},
	}
	for _, tt := range tests {
		if got := SeedFruitMembership(tt.x); !almostEqual(got, tt.want) {
			t.Errorf("SeedFruitMembership(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestSeedRainMembership(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 1.0},
		{5000, 0.8125},
		{1e4, 0.75},
		{1e5, 0.45},
		{1e7, 0.0},
		{2e7, 0.0},
	}
	for _, tt := range tests {
		if got := SeedRainMembership(tt.x); !almostEqual(got, tt.want) {
			t.Errorf("SeedRainMembership(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}

	// Continuity at the regime boundaries.
	if got := SeedRainMembership(1e4 - 1e-6); math.Abs(got-0.75) > 1e-3 {
		t.Errorf("discontinuity at 10^4: %v", got)
	}
	if got := SeedRainMembership(1e5 - 1e-6); math.Abs(got-0.45) > 1e-3 {
		t.Errorf("discontinuity at 10^5: %v", got)
	}
}

func TestViabilityMembership(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 1.0},
		{2.9, 1.0},
		{3, 1.0},
		{600, 0.7},
		{1200, 0.0},
		{1300, 0.0},
	}
	for _, tt := range tests {
		if got := ViabilityMembership(tt.x); !almostEqual(got, tt.want) {
			t.Errorf("ViabilityMembership(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestStrengthMembership(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 1.0},
		{1, 0.9875},
		{2, 0.95},
		{3.5, 0.875},
		{5, 50.0 / 77},
		{10, 0.0},
	}
	for _, tt := range tests {
		if got := StrengthMembership(tt.x); !almostEqual(got, tt.want) {
			t.Errorf("StrengthMembership(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestMembershipsNonIncreasing(t *testing.T) {
	fns := map[string]struct {
		f      func(float64) float64
		domain []float64
	}{
		"sf":  {SeedFruitMembership, []float64{0, 1, 100, 300, 501, 700, 1001, 1200}},
		"asr": {SeedRainMembership, []float64{0, 5e3, 1e4, 5e4, 1e5, 1e6, 1e7, 2e7}},
		"via": {ViabilityMembership, []float64{0, 3, 100, 400, 602, 900, 1200, 1500}},
		"ldd": {StrengthMembership, []float64{0, 1, 2, 3, 5, 7, 9, 10}},
	}
	for name, fn := range fns {
		prev := math.Inf(1)
		for _, x := range fn.domain {
			got := fn.f(x)
			if got < 0 || got > 1 {
				t.Errorf("%s(%v) = %v outside [0,1]", name, x, got)
			}
			// VIA has a small step at its concavity change; allow it.
			if got > prev+1e-2 {
				t.Errorf("%s increases at %v: %v > %v", name, x, got, prev)
			}
			prev = got
		}
	}
}

func TestClamped(t *testing.T) {
	in := Traits{SeedsPerFruit: -5, AnnualSeedRain: -1, ViabilityMo: -0.1, LDDStrength: 12}
	got := in.Clamped()
	want := Traits{SeedsPerFruit: 0, AnnualSeedRain: 0, ViabilityMo: 0, LDDStrength: 10}
	if got != want {
		t.Errorf("Clamped() = %+v, want %+v", got, want)
	}
}
