package api

import (
	"net/http"

	"github.com/EcoSentry/FloraRisk/internal/aggregate"
	"github.com/EcoSentry/FloraRisk/internal/linguistic"
)

// ReferenceHandler serves the static vocabulary of the engine: the linguistic
// term set and the canonical quantifier profiles.
type ReferenceHandler struct{}

func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

type ScaleTerm struct {
	Index    int       `json:"index"`
	Name     string    `json:"name"`
	Apex     float64   `json:"apex"`
	Support  []float64 `json:"support"`
	Centroid float64   `json:"centroid"`
}

func (h *ReferenceHandler) Scale(w http.ResponseWriter, r *http.Request) {
	labels := linguistic.Labels()
	terms := make([]ScaleTerm, len(labels))
	for i, l := range labels {
		tfn := l.TFN()
		lo, hi := tfn.Support()
		terms[i] = ScaleTerm{
			Index:    int(l),
			Name:     l.String(),
			Apex:     tfn.Apex,
			Support:  []float64{lo, hi},
			Centroid: tfn.Centroid(),
		}
	}
	writeJSON(w, http.StatusOK, terms)
}

type QuantifierProfile struct {
	Name    string    `json:"name"`
	Bounds  []float64 `json:"bounds,omitempty"`
	Weights []float64 `json:"weights_n4"`
}

func (h *ReferenceHandler) Quantifiers(w http.ResponseWriter, r *http.Request) {
	profiles := []struct {
		name string
		q    aggregate.Quantifier
	}{
		{"mean", aggregate.Mean()},
		{"most", aggregate.Most()},
		{"at_least_half", aggregate.AtLeastHalf()},
	}

	out := make([]QuantifierProfile, 0, len(profiles))
	for _, p := range profiles {
		weights, err := p.q.Weights(4)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		profile := QuantifierProfile{Name: p.name, Weights: weights}
		if !p.q.IsMean() {
			a, b := p.q.Bounds()
			profile.Bounds = []float64{a, b}
		}
		out = append(out, profile)
	}
	writeJSON(w, http.StatusOK, out)
}
