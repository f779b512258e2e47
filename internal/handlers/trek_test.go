package handlers

import (
	"context"
	"testing"

	"github.com/himalayan-adventures/trek-api/internal/store"
)

func TestListTreksDifficultyFilter(t *testing.T) {
	h := NewTrekHandler(store.NewMemStore())

	out, err := h.HandleListTreks(context.Background(), &ListTreksInput{Difficulty: "strenuous"})
	if err != nil {
		t.Fatalf("HandleListTreks failed: %v", err)
	}
	if out.Body.Count != 2 {
		t.Fatalf("expected 2 strenuous treks, got %d", out.Body.Count)
	}
	for _, trek := range out.Body.Treks {
		if trek.DifficultyLevel != "strenuous" {
			t.Errorf("%s: difficulty %q escaped the filter", trek.Slug, trek.DifficultyLevel)
		}
	}
}

func TestGetTrekBySlug(t *testing.T) {
	h := NewTrekHandler(store.NewMemStore())

	out, err := h.HandleGetTrek(context.Background(), &GetTrekInput{Slug: "valley-of-flowers-trek"})
	if err != nil {
		t.Fatalf("HandleGetTrek failed: %v", err)
	}
	if out.Body.DifficultyLevel != "easy" || out.Body.DurationDays != 6 {
		t.Errorf("unexpected trek: %+v", out.Body)
	}

	_, err = h.HandleGetTrek(context.Background(), &GetTrekInput{Slug: "everest-base-camp"})
	if got := statusOf(t, err); got != 404 {
		t.Errorf("expected 404 for unknown slug, got %d", got)
	}
}

func TestCatalogListsPackagesAndAddOns(t *testing.T) {
	h := NewTrekHandler(store.NewMemStore())

	out, err := h.HandleCatalog(context.Background(), &struct{}{})
	if err != nil {
		t.Fatalf("HandleCatalog failed: %v", err)
	}
	if len(out.Body.Packages) != 3 {
		t.Errorf("expected 3 package tiers, got %d", len(out.Body.Packages))
	}
	if len(out.Body.AddOns) != 4 {
		t.Errorf("expected 4 add-ons, got %d", len(out.Body.AddOns))
	}
}
