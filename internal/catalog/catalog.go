// Package catalog stores reference species records: the published validation
// set plus any species added by operators. Past assessment runs are never
// persisted; the catalog holds traits, not results.
package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/EcoSentry/FloraRisk/internal/linguistic"
)

// Species is one reference record with the eight model inputs and, where the
// source literature provides one, the published risk label to validate
// against.
type Species struct {
	ID             uuid.UUID `json:"id"`
	ScientificName string    `json:"scientific_name"`
	CommonName     string    `json:"common_name,omitempty"`

	// Dispersal traits
	SF  float64 `json:"sf"`
	ASR float64 `json:"asr"`
	VIA float64 `json:"via"`
	LDD float64 `json:"ldd"`

	// Linguistic factors
	VRS linguistic.Label `json:"vrs"`
	SGR linguistic.Label `json:"sgr"`
	HA  linguistic.Label `json:"ha"`
	NMD linguistic.Label `json:"nmd"`

	PublishedRisk *linguistic.Label `json:"published_risk,omitempty"`
	Notes         string            `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter narrows a species listing.
type Filter struct {
	PublishedRisk *linguistic.Label
	Search        string
	Limit         int
	Offset        int
}

type Store interface {
	CreateSpecies(ctx context.Context, s *Species) error
	GetSpecies(ctx context.Context, id uuid.UUID) (*Species, error)
	ListSpecies(ctx context.Context, filter Filter) ([]*Species, error)
	DeleteSpecies(ctx context.Context, id uuid.UUID) error

	Close() error
}
