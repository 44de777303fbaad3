package aggregate

import "github.com/EcoSentry/FloraRisk/internal/linguistic"

// Expert importance labels for the four main factors (dispersal, vegetative
// reproduction, seed germination, miscellaneous influence), in that order.
func ExpertWeights() [4]linguistic.Label {
	return [4]linguistic.Label{
		linguistic.VeryHigh,
		linguistic.VeryHigh,
		linguistic.Medium,
		linguistic.High,
	}
}

// SelectQuantifier is the expert-model decision table over the dispersal,
// VRS and SGR labels. The narrow D=High case is tested first: the general
// negation guard below it subsumes every triple it matches, so listing it
// second would make it unreachable.
func SelectQuantifier(dispersal, vrs, sgr linguistic.Label) Quantifier {
	d, v, s := int(dispersal), int(vrs), int(sgr)
	negV := linguistic.MaxIndex - v
	medium := int(linguistic.Medium)

	if d == int(linguistic.High) && (v == medium || v == int(linguistic.Low)) && s == medium {
		return AtLeastHalf()
	}
	if d >= negV && (d >= medium || v >= medium) {
		return Mean()
	}
	if d <= int(linguistic.Low) && v <= int(linguistic.Low) {
		return Most()
	}
	return AtLeastHalf()
}
