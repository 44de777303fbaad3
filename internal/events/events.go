package events

import "time"

const (
	StreamName   = "FLORA_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectAssessmentCompleted(assessmentID string) string {
	return "flora.assessment." + assessmentID + ".completed"
}
func SubjectSpeciesCreated(speciesID string) string {
	return "flora.species." + speciesID + ".created"
}
func SubjectSpeciesDeleted(speciesID string) string {
	return "flora.species." + speciesID + ".deleted"
}

// AssessmentCompletedEvent announces one finished assessment. Only the
// outputs travel; the engine never persists them.
type AssessmentCompletedEvent struct {
	AssessmentID   string    `json:"assessment_id"`
	SpeciesID      string    `json:"species_id,omitempty"`
	Model          string    `json:"model"`
	Quantifier     string    `json:"quantifier"`
	FinalRisk      string    `json:"final_risk"`
	DispersalScore float64   `json:"dispersal_score"`
	Timestamp      time.Time `json:"timestamp"`
}

type SpeciesCreatedEvent struct {
	SpeciesID      string `json:"species_id"`
	ScientificName string `json:"scientific_name"`
}

type SpeciesDeletedEvent struct {
	SpeciesID string `json:"species_id"`
}
