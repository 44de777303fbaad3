package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/EcoSentry/FloraRisk/internal/assess"
	"github.com/EcoSentry/FloraRisk/internal/catalog"
	"github.com/EcoSentry/FloraRisk/internal/config"
	"github.com/EcoSentry/FloraRisk/internal/events"
	"github.com/EcoSentry/FloraRisk/internal/linguistic"
)

type SpeciesHandler struct {
	store  catalog.Store
	events events.Client
	engine *assess.Assessor
	cfg    *config.Config
}

func NewSpeciesHandler(s catalog.Store, ev events.Client, engine *assess.Assessor, cfg *config.Config) *SpeciesHandler {
	return &SpeciesHandler{store: s, events: ev, engine: engine, cfg: cfg}
}

func (h *SpeciesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var sp catalog.Species
	if err := json.NewDecoder(r.Body).Decode(&sp); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if sp.ScientificName == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "scientific_name required"})
		return
	}
	for _, l := range []linguistic.Label{sp.VRS, sp.SGR, sp.HA, sp.NMD} {
		if !l.Valid() {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "linguistic labels must be within the term set"})
			return
		}
	}
	if sp.PublishedRisk != nil && !sp.PublishedRisk.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "published_risk out of range"})
		return
	}

	if err := h.store.CreateSpecies(r.Context(), &sp); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectSpeciesCreated(sp.ID.String()), events.SpeciesCreatedEvent{
			SpeciesID:      sp.ID.String(),
			ScientificName: sp.ScientificName,
		})
	}

	writeJSON(w, http.StatusCreated, sp)
}

func (h *SpeciesHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := catalog.Filter{
		Search: r.URL.Query().Get("search"),
	}
	if s := r.URL.Query().Get("published_risk"); s != "" {
		label, err := linguistic.ParseLabel(s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid published_risk"})
			return
		}
		filter.PublishedRisk = &label
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			filter.Limit = n
		}
	}
	if s := r.URL.Query().Get("offset"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			filter.Offset = n
		}
	}

	records, err := h.store.ListSpecies(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if records == nil {
		records = []*catalog.Species{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *SpeciesHandler) Get(w http.ResponseWriter, r *http.Request) {
	sp, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sp)
}

func (h *SpeciesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid species id"})
		return
	}

	if err := h.store.DeleteSpecies(r.Context(), id); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "species not found"})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectSpeciesDeleted(id.String()), events.SpeciesDeletedEvent{
			SpeciesID: id.String(),
		})
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Assess runs the engine against a stored species record. Model and quantifier
// come from query parameters, falling back to configured defaults.
func (h *SpeciesHandler) Assess(w http.ResponseWriter, r *http.Request) {
	sp, ok := h.lookup(w, r)
	if !ok {
		return
	}

	req := AssessmentRequest{
		Input: assess.Input{
			SF: sp.SF, ASR: sp.ASR, VIA: sp.VIA, LDD: sp.LDD,
			VRS: sp.VRS, SGR: sp.SGR, HA: sp.HA, NMD: sp.NMD,
		},
		Model:      r.URL.Query().Get("model"),
		Quantifier: r.URL.Query().Get("quantifier"),
	}

	assessments := NewAssessmentsHandler(h.engine, h.events, h.cfg)
	result, err := assessments.run(req, sp.ID.String())
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	resp := struct {
		Species *catalog.Species `json:"species"`
		*AssessmentResponse
		PublishedRisk *linguistic.Label `json:"published_risk,omitempty"`
		Matches       *bool             `json:"matches_published,omitempty"`
	}{
		Species:            sp,
		AssessmentResponse: result,
		PublishedRisk:      sp.PublishedRisk,
	}
	if sp.PublishedRisk != nil {
		m := *sp.PublishedRisk == result.FinalRisk
		resp.Matches = &m
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *SpeciesHandler) lookup(w http.ResponseWriter, r *http.Request) (*catalog.Species, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid species id"})
		return nil, false
	}

	sp, err := h.store.GetSpecies(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return nil, false
	}
	if sp == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "species not found"})
		return nil, false
	}
	return sp, true
}
