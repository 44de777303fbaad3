package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used in tests and when no database is
// configured.
type MemoryStore struct {
	mu      sync.RWMutex
	species map[uuid.UUID]*Species
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{species: make(map[uuid.UUID]*Species)}
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) CreateSpecies(_ context.Context, sp *Species) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sp.ID == uuid.Nil {
		sp.ID = uuid.New()
	}
	now := time.Now().UTC()
	sp.CreatedAt = now
	sp.UpdatedAt = now
	cp := *sp
	s.species[sp.ID] = &cp
	return nil
}

func (s *MemoryStore) GetSpecies(_ context.Context, id uuid.UUID) (*Species, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sp, ok := s.species[id]
	if !ok {
		return nil, nil
	}
	cp := *sp
	return &cp, nil
}

func (s *MemoryStore) ListSpecies(_ context.Context, filter Filter) ([]*Species, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Species
	for _, sp := range s.species {
		if filter.PublishedRisk != nil {
			if sp.PublishedRisk == nil || *sp.PublishedRisk != *filter.PublishedRisk {
				continue
			}
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(sp.ScientificName), needle) &&
				!strings.Contains(strings.ToLower(sp.CommonName), needle) {
				continue
			}
		}
		cp := *sp
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScientificName < out[j].ScientificName
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) DeleteSpecies(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.species[id]; !ok {
		return fmt.Errorf("species %s not found", id)
	}
	delete(s.species, id)
	return nil
}
