package assess

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/EcoSentry/FloraRisk/internal/dispersal"
	"github.com/EcoSentry/FloraRisk/internal/linguistic"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// highDispersalInput lands the dispersal score at ~0.667, the High centroid.
func highDispersalInput() Input {
	return Input{
		SF: 300, ASR: 50000, VIA: 12, LDD: 5,
		VRS: linguistic.Medium, SGR: linguistic.Medium,
		HA: linguistic.Medium, NMD: linguistic.Medium,
	}
}

func TestRunModelIMeanMatchesRoundedIndexMean(t *testing.T) {
	a := New(discardLogger())
	res, err := a.Run(highDispersalInput(), ModelEqualWeight, QuantMean)
	if err != nil {
		t.Fatal(err)
	}
	if res.MainFactors.Dispersal != linguistic.High {
		t.Fatalf("dispersal label = %s, want High (score %f)", res.MainFactors.Dispersal, res.DispersalScore)
	}
	// Indices (4,3,3,3) average to 3.25: the rounded mean is Medium, a
	// boundary case the ordered recursion would decide differently.
	if res.FinalRisk != linguistic.Medium {
		t.Errorf("final risk = %s, want Medium", res.FinalRisk)
	}
	if res.Quantifier != "mean" {
		t.Errorf("quantifier = %q, want mean", res.Quantifier)
	}
}

func TestRunModelIIExpertWeighted(t *testing.T) {
	a := New(discardLogger())
	res, err := a.Run(highDispersalInput(), ModelExpertWeighted, "")
	if err != nil {
		t.Fatal(err)
	}
	// (High, Medium, Medium) selects "at least half"; the min-transformed
	// indices (4,3,3,3) stay at High under its (0.5, 0.5, 0, 0) weights.
	if res.Quantifier != "at least half" {
		t.Errorf("quantifier = %q, want at least half", res.Quantifier)
	}
	if res.FinalRisk != linguistic.High {
		t.Errorf("final risk = %s, want High", res.FinalRisk)
	}
}

func TestRunLowSeedCountScenario(t *testing.T) {
	a := New(discardLogger())
	in := Input{
		SF: 5, ASR: 2000, VIA: 6, LDD: 1,
		VRS: linguistic.Medium, SGR: linguistic.Medium,
		HA: linguistic.Medium, NMD: linguistic.Medium,
	}
	res, err := a.Run(in, ModelEqualWeight, QuantMean)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dispersal.Category != dispersal.CategoryI {
		t.Errorf("category = %s, want I", res.Dispersal.Category)
	}
	if res.MainFactors.Dispersal > linguistic.Low {
		t.Errorf("dispersal label = %s, want Low or below", res.MainFactors.Dispersal)
	}
	if math.Abs(res.DispersalScore-0.101040) > 1e-5 {
		t.Errorf("dispersal score = %f, want ~0.101040", res.DispersalScore)
	}
}

func TestRunHeavySeedRainScenario(t *testing.T) {
	a := New(discardLogger())
	in := Input{
		SF: 100000, ASR: 500000, VIA: 600, LDD: 9,
		VRS: linguistic.Medium, SGR: linguistic.Medium,
		HA: linguistic.Medium, NMD: linguistic.Medium,
	}
	res, err := a.Run(in, ModelEqualWeight, QuantMean)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dispersal.Category != dispersal.CategoryIII {
		t.Errorf("category = %s, want III", res.Dispersal.Category)
	}
	if res.MainFactors.Dispersal < linguistic.High {
		t.Errorf("dispersal label = %s, want High or above", res.MainFactors.Dispersal)
	}
}

func TestRunMISMidpoint(t *testing.T) {
	a := New(discardLogger())
	in := highDispersalInput()
	in.HA = linguistic.Medium
	in.NMD = linguistic.Medium
	res, err := a.Run(in, ModelEqualWeight, QuantMean)
	if err != nil {
		t.Fatal(err)
	}
	if res.MainFactors.MIS != linguistic.Medium {
		t.Errorf("MIS = %s, want Medium", res.MainFactors.MIS)
	}

	in.HA = linguistic.High
	in.NMD = linguistic.Low
	res, err = a.Run(in, ModelEqualWeight, QuantMean)
	if err != nil {
		t.Fatal(err)
	}
	// Rounded mean of (4, 2).
	if res.MainFactors.MIS != linguistic.Medium {
		t.Errorf("MIS = %s, want Medium", res.MainFactors.MIS)
	}
}

func TestRunValidatesLabels(t *testing.T) {
	a := New(discardLogger())
	in := highDispersalInput()
	in.VRS = linguistic.Label(12)
	if _, err := a.Run(in, ModelEqualWeight, QuantMean); err == nil {
		t.Error("expected error for out-of-range VRS label")
	}
}

func TestRunRejectsUnknownModelAndQuantifier(t *testing.T) {
	a := New(discardLogger())
	if _, err := a.Run(highDispersalInput(), Model("bayesian"), QuantMean); err == nil {
		t.Error("expected error for unknown model")
	}
	if _, err := a.Run(highDispersalInput(), ModelEqualWeight, QuantifierChoice("all")); err == nil {
		t.Error("expected error for unknown quantifier")
	}
}

func TestRunClampsNumericInputs(t *testing.T) {
	a := New(discardLogger())
	in := highDispersalInput()
	in.LDD = 14
	res, err := a.Run(in, ModelEqualWeight, QuantMean)
	if err != nil {
		t.Fatal(err)
	}
	in.LDD = 10
	capped, err := a.Run(in, ModelEqualWeight, QuantMean)
	if err != nil {
		t.Fatal(err)
	}
	if res.DispersalScore != capped.DispersalScore {
		t.Errorf("LDD clamp mismatch: %f vs %f", res.DispersalScore, capped.DispersalScore)
	}
}

func TestParseModel(t *testing.T) {
	if m, err := ParseModel(""); err != nil || m != ModelEqualWeight {
		t.Errorf("empty model: %v, %v", m, err)
	}
	if m, err := ParseModel("expert_weighted"); err != nil || m != ModelExpertWeighted {
		t.Errorf("expert model: %v, %v", m, err)
	}
	if _, err := ParseModel("nonsense"); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestInterpretationBands(t *testing.T) {
	if Interpretation(linguistic.Unlikely) == Interpretation(linguistic.ExtremelyHigh) {
		t.Error("extreme labels share an interpretation")
	}
	if Interpretation(linguistic.Medium) != Interpretation(linguistic.High) {
		t.Error("Medium and High should share the monitoring band")
	}
}
