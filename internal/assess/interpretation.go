package assess

import "github.com/EcoSentry/FloraRisk/internal/linguistic"

// Interpretation returns the management recommendation for a final risk
// label.
func Interpretation(l linguistic.Label) string {
	switch {
	case l <= linguistic.Low:
		return "Minimal invasion risk. Routine observation is sufficient; reassess if traits or site conditions change."
	case l <= linguistic.High:
		return "Moderate invasion risk. The species warrants monitoring and a containment plan for managed sites."
	default:
		return "Severe invasion risk. Urgent preventive action is recommended: restrict propagation and prioritise control measures."
	}
}
