package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/EcoSentry/FloraRisk/internal/assess"
	"github.com/EcoSentry/FloraRisk/internal/config"
	"github.com/EcoSentry/FloraRisk/internal/events"
)

type AssessmentsHandler struct {
	engine *assess.Assessor
	events events.Client
	cfg    *config.Config
}

func NewAssessmentsHandler(engine *assess.Assessor, ev events.Client, cfg *config.Config) *AssessmentsHandler {
	return &AssessmentsHandler{engine: engine, events: ev, cfg: cfg}
}

type AssessmentRequest struct {
	assess.Input
	Model      string `json:"model,omitempty"`
	Quantifier string `json:"quantifier,omitempty"`
}

type AssessmentResponse struct {
	AssessmentID string    `json:"assessment_id"`
	Timestamp    time.Time `json:"timestamp"`
	*assess.Result
}

func (h *AssessmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := h.run(req, "")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// run resolves the model and quantifier against configured defaults, executes
// the assessment, and publishes the completion event. speciesID is empty for
// ad-hoc requests.
func (h *AssessmentsHandler) run(req AssessmentRequest, speciesID string) (*AssessmentResponse, error) {
	modelName := req.Model
	if modelName == "" {
		modelName = h.cfg.Engine.DefaultModel
	}
	model, err := assess.ParseModel(modelName)
	if err != nil {
		return nil, err
	}

	choice := assess.QuantifierChoice(req.Quantifier)
	if choice == "" {
		choice = assess.QuantifierChoice(h.cfg.Engine.DefaultQuantifier)
	}

	result, err := h.engine.Run(req.Input, model, choice)
	if err != nil {
		return nil, err
	}

	resp := &AssessmentResponse{
		AssessmentID: uuid.New().String(),
		Timestamp:    time.Now().UTC(),
		Result:       result,
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectAssessmentCompleted(resp.AssessmentID), events.AssessmentCompletedEvent{
			AssessmentID:   resp.AssessmentID,
			SpeciesID:      speciesID,
			Model:          string(result.Model),
			Quantifier:     result.Quantifier,
			FinalRisk:      result.FinalRisk.String(),
			DispersalScore: result.DispersalScore,
			Timestamp:      resp.Timestamp,
		})
	}

	return resp, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
