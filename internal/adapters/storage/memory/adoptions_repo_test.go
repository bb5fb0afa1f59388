package memory

import (
	"context"
	"testing"
	"time"

	"pet-explorer/internal/domain/adoptions"
)

func TestAdoptionRepo_AddIsIdempotent(t *testing.T) {
	repo := NewAdoptionRepo()
	ctx := context.Background()
	now := time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)

	created, err := repo.Add(ctx, adoptions.Adoption{ID: "a1", SessionID: "s1", PetID: "dog1", AdoptedAt: now})
	if err != nil || !created {
		t.Fatalf("first add: created=%v err=%v", created, err)
	}
	created, err = repo.Add(ctx, adoptions.Adoption{ID: "a2", SessionID: "s1", PetID: "dog1", AdoptedAt: now})
	if err != nil || created {
		t.Fatalf("second add: created=%v err=%v", created, err)
	}

	list, _ := repo.ListBySession(ctx, "s1")
	if len(list) != 1 || list[0].ID != "a1" {
		t.Fatalf("expected only the first entry, got %+v", list)
	}
}

func TestAdoptionRepo_SessionsAreSeparate(t *testing.T) {
	repo := NewAdoptionRepo()
	ctx := context.Background()

	_, _ = repo.Add(ctx, adoptions.Adoption{ID: "a1", SessionID: "s1", PetID: "cat1"})
	_, _ = repo.Add(ctx, adoptions.Adoption{ID: "a2", SessionID: "s1", PetID: "bird2"})

	if ok, _ := repo.Has(ctx, "s2", "cat1"); ok {
		t.Fatalf("session s2 must not see s1 adoptions")
	}
	if ok, _ := repo.Has(ctx, "s1", "cat1"); !ok {
		t.Fatalf("expected cat1 adopted in s1")
	}

	list, _ := repo.ListBySession(ctx, "s1")
	if len(list) != 2 || list[0].PetID != "cat1" || list[1].PetID != "bird2" {
		t.Fatalf("expected insertion order, got %+v", list)
	}
}

func TestAdoptionRepo_RejectsEmptyKeys(t *testing.T) {
	repo := NewAdoptionRepo()
	if _, err := repo.Add(context.Background(), adoptions.Adoption{SessionID: "s1"}); err == nil {
		t.Fatalf("expected error for empty pet id")
	}
}
