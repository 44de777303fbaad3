package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/EcoSentry/FloraRisk/internal/linguistic"
)

func sample(name string, risk linguistic.Label) *Species {
	r := risk
	return &Species{
		ScientificName: name,
		SF:             100, ASR: 20000, VIA: 24, LDD: 5,
		VRS: linguistic.High, SGR: linguistic.Medium,
		HA: linguistic.High, NMD: linguistic.Medium,
		PublishedRisk: &r,
	}
}

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	sp := sample("Mikania micrantha", linguistic.VeryHigh)
	if err := s.CreateSpecies(ctx, sp); err != nil {
		t.Fatal(err)
	}
	if sp.ID == uuid.Nil {
		t.Fatal("expected an assigned id")
	}
	if sp.CreatedAt.IsZero() {
		t.Error("expected created_at set")
	}

	got, err := s.GetSpecies(ctx, sp.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ScientificName != "Mikania micrantha" {
		t.Fatalf("unexpected record: %+v", got)
	}

	if err := s.DeleteSpecies(ctx, sp.ID); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.GetSpecies(ctx, sp.ID); got != nil {
		t.Error("expected nil after delete")
	}
	if err := s.DeleteSpecies(ctx, sp.ID); err == nil {
		t.Error("expected error deleting a missing record")
	}
}

func TestMemoryStoreGetMissingReturnsNil(t *testing.T) {
	s := NewMemoryStore()
	got, err := s.GetSpecies(context.Background(), uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, rec := range []*Species{
		sample("Mikania micrantha", linguistic.VeryHigh),
		sample("Lantana camara", linguistic.High),
		sample("Annona glabra", linguistic.Medium),
	} {
		if err := s.CreateSpecies(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	all, err := s.ListSpecies(ctx, Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	if all[0].ScientificName != "Annona glabra" {
		t.Errorf("expected alphabetical order, got %s first", all[0].ScientificName)
	}

	risk := linguistic.High
	filtered, err := s.ListSpecies(ctx, Filter{PublishedRisk: &risk})
	if err != nil {
		t.Fatal(err)
	}
	if len(filtered) != 1 || filtered[0].ScientificName != "Lantana camara" {
		t.Errorf("risk filter gave %d records", len(filtered))
	}

	searched, err := s.ListSpecies(ctx, Filter{Search: "mikania"})
	if err != nil {
		t.Fatal(err)
	}
	if len(searched) != 1 || searched[0].ScientificName != "Mikania micrantha" {
		t.Errorf("search gave %d records", len(searched))
	}

	paged, err := s.ListSpecies(ctx, Filter{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(paged) != 1 || paged[0].ScientificName != "Lantana camara" {
		t.Errorf("pagination gave %v", paged)
	}
}

func TestMemoryStoreCopiesRecords(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	sp := sample("Mimosa pigra", linguistic.High)
	if err := s.CreateSpecies(ctx, sp); err != nil {
		t.Fatal(err)
	}

	got, _ := s.GetSpecies(ctx, sp.ID)
	got.ScientificName = "mutated"

	again, _ := s.GetSpecies(ctx, sp.ID)
	if again.ScientificName != "Mimosa pigra" {
		t.Error("store leaked internal state to callers")
	}
}
