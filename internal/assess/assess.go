// Package assess runs the full invasion-risk pipeline: the numeric dispersal
// sub-model, the miscellaneous-influence aggregate, and the final symbolic
// aggregation under either the equal-weight or the expert-weighted model.
package assess

import (
	"fmt"
	"log/slog"

	"github.com/EcoSentry/FloraRisk/internal/aggregate"
	"github.com/EcoSentry/FloraRisk/internal/dispersal"
	"github.com/EcoSentry/FloraRisk/internal/linguistic"
)

// Model selects the final aggregation strategy.
type Model string

const (
	// ModelEqualWeight aggregates the four main factors with LOWA under a
	// caller-chosen quantifier.
	ModelEqualWeight Model = "equal_weight"
	// ModelExpertWeighted min-transforms each factor against the fixed expert
	// importance labels and selects the quantifier from the decision table.
	ModelExpertWeighted Model = "expert_weighted"
)

// ParseModel resolves a model name.
func ParseModel(s string) (Model, error) {
	switch Model(s) {
	case ModelEqualWeight, ModelExpertWeighted:
		return Model(s), nil
	case "":
		return ModelEqualWeight, nil
	default:
		return "", fmt.Errorf("unknown model %q", s)
	}
}

// QuantifierChoice names the canonical quantifier profiles the equal-weight
// model accepts.
type QuantifierChoice string

const (
	QuantMean        QuantifierChoice = "mean"
	QuantMost        QuantifierChoice = "most"
	QuantAtLeastHalf QuantifierChoice = "at_least_half"
)

// Quantifier resolves the named profile.
func (c QuantifierChoice) Quantifier() (aggregate.Quantifier, error) {
	switch c {
	case QuantMean, "":
		return aggregate.Mean(), nil
	case QuantMost:
		return aggregate.Most(), nil
	case QuantAtLeastHalf:
		return aggregate.AtLeastHalf(), nil
	default:
		return aggregate.Quantifier{}, fmt.Errorf("unknown quantifier %q", string(c))
	}
}

// Input is the fixed record of eight measurements for one species.
type Input struct {
	SF  float64 `json:"sf"`
	ASR float64 `json:"asr"`
	VIA float64 `json:"via"`
	LDD float64 `json:"ldd"`

	VRS linguistic.Label `json:"vrs"`
	SGR linguistic.Label `json:"sgr"`
	HA  linguistic.Label `json:"ha"`
	NMD linguistic.Label `json:"nmd"`
}

// Validate rejects labels outside the term set. Numeric traits are clamped by
// the dispersal sub-model rather than rejected here.
func (in Input) Validate() error {
	for _, l := range []struct {
		name  string
		label linguistic.Label
	}{
		{"vrs", in.VRS}, {"sgr", in.SGR}, {"ha", in.HA}, {"nmd", in.NMD},
	} {
		if !l.label.Valid() {
			return fmt.Errorf("%s label index %d out of range", l.name, int(l.label))
		}
	}
	return nil
}

// MainFactors are the four linguistic factors the final aggregation consumes.
type MainFactors struct {
	Dispersal linguistic.Label `json:"dispersal"`
	VRS       linguistic.Label `json:"vrs"`
	SGR       linguistic.Label `json:"sgr"`
	MIS       linguistic.Label `json:"mis"`
}

func (m MainFactors) labels() []linguistic.Label {
	return []linguistic.Label{m.Dispersal, m.VRS, m.SGR, m.MIS}
}

// Result is the complete output record for one assessment.
type Result struct {
	FinalRisk      linguistic.Label     `json:"final_risk"`
	DispersalScore float64              `json:"dispersal_score"`
	MainFactors    MainFactors          `json:"main_factors"`
	Model          Model                `json:"model"`
	Quantifier     string               `json:"quantifier"`
	Interpretation string               `json:"interpretation"`
	Dispersal      *dispersal.Breakdown `json:"dispersal_detail,omitempty"`
}

// Assessor is the engine facade the API layer drives. It is stateless and
// safe for concurrent use.
type Assessor struct {
	logger *slog.Logger
}

// New creates an Assessor.
func New(logger *slog.Logger) *Assessor {
	return &Assessor{logger: logger}
}

// Run executes an assessment. The quantifier choice only applies to the
// equal-weight model; the expert model derives its own from the decision
// table.
func (a *Assessor) Run(in Input, model Model, choice QuantifierChoice) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	breakdown := dispersal.Score(dispersal.Traits{
		SeedsPerFruit:  in.SF,
		AnnualSeedRain: in.ASR,
		ViabilityMo:    in.VIA,
		LDDStrength:    in.LDD,
	})
	dispersalLabel := linguistic.NearestLabel(breakdown.Score)

	mis, err := aggregateMIS(in.HA, in.NMD)
	if err != nil {
		return nil, err
	}

	factors := MainFactors{
		Dispersal: dispersalLabel,
		VRS:       in.VRS,
		SGR:       in.SGR,
		MIS:       mis,
	}

	var final linguistic.Label
	var quantifier aggregate.Quantifier
	switch model {
	case ModelEqualWeight:
		quantifier, err = choice.Quantifier()
		if err != nil {
			return nil, err
		}
		final, err = aggregate.LOWA(factors.labels(), quantifier)
	case ModelExpertWeighted:
		quantifier = aggregate.SelectQuantifier(factors.Dispersal, factors.VRS, factors.SGR)
		weights := aggregate.ExpertWeights()
		pairs := make([]aggregate.Weighted, 4)
		for i, value := range factors.labels() {
			pairs[i] = aggregate.Weighted{Importance: weights[i], Value: value}
		}
		final, err = aggregate.LWA(pairs, quantifier)
	default:
		return nil, fmt.Errorf("unknown model %q", string(model))
	}
	if err != nil {
		return nil, err
	}

	a.logger.Debug("assessment complete",
		"model", string(model),
		"quantifier", quantifier.String(),
		"category", breakdown.Category.String(),
		"dispersal_score", breakdown.Score,
		"final_risk", final.String(),
	)

	return &Result{
		FinalRisk:      final,
		DispersalScore: breakdown.Score,
		MainFactors:    factors,
		Model:          model,
		Quantifier:     quantifier.String(),
		Interpretation: Interpretation(final),
		Dispersal:      &breakdown,
	}, nil
}

// aggregateMIS combines the human-activity and disturbance labels. Always the
// Mean quantifier with identical weight/value pairs: the midpoint-rounded
// aggregate of the two inputs.
func aggregateMIS(ha, nmd linguistic.Label) (linguistic.Label, error) {
	return aggregate.LWA([]aggregate.Weighted{
		{Importance: ha, Value: ha},
		{Importance: nmd, Value: nmd},
	}, aggregate.Mean())
}
