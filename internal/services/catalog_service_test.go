package services

import (
	"context"
	"math/rand"
	"testing"

	"github.com/momently/go-gift-backend/internal/catalog"
	"github.com/momently/go-gift-backend/internal/domain"
)

func newCatalogService(seed int64) *CatalogService {
	return NewCatalogService(8, rand.New(rand.NewSource(seed)))
}

func TestFeatured_SponsoredLeadTheList(t *testing.T) {
	svc := newCatalogService(1)

	items := svc.Featured(context.Background(), 0)
	if len(items) != 8 {
		t.Fatalf("count = %d, want default 8", len(items))
	}

	sponsored := catalog.Sponsored()
	for i, p := range sponsored {
		if items[i].ID != p.ID {
			t.Fatalf("slot %d = %s, want sponsored %s", i, items[i].ID, p.ID)
		}
		if items[i].Label != "Partner Pick" {
			t.Fatalf("sponsored label = %q", items[i].Label)
		}
	}
	for _, it := range items[len(sponsored):] {
		if it.Label == "Partner Pick" {
			t.Fatalf("filler item %s labelled as sponsored", it.ID)
		}
	}
}

func TestFeatured_NoDuplicates(t *testing.T) {
	svc := newCatalogService(4)

	items := svc.Featured(context.Background(), 20)
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.ID]; dup {
			t.Fatalf("duplicate product %s", it.ID)
		}
		seen[it.ID] = struct{}{}
	}
}

func TestFeatured_ClampsCount(t *testing.T) {
	svc := newCatalogService(2)

	cases := []struct {
		in   int
		want int
	}{
		{0, 8},   // default
		{1, 1},   // sponsored only fills partially
		{-5, 1},  // floor
		{100, 24}, // ceiling
		{5, 5},
	}
	for _, tc := range cases {
		items := svc.Featured(context.Background(), tc.in)
		if len(items) != tc.want {
			t.Errorf("Featured(%d) = %d items, want %d", tc.in, len(items), tc.want)
		}
	}
}

func TestPoolLabel(t *testing.T) {
	svc := newCatalogService(1)

	cases := []struct {
		name string
		p    domain.Product
		want string
	}{
		{"recipient wins", domain.Product{RecipientTags: []string{"for_her"}, InterestTags: []string{"tech"}}, "For Her"},
		{"interest", domain.Product{InterestTags: []string{"photography"}}, "Photography"},
		{"urgency", domain.Product{UrgencyTags: []string{"this_week"}}, "This Week"},
		{"untagged", domain.Product{}, "Editor's Pick"},
	}
	for _, tc := range cases {
		if got := svc.poolLabel(tc.p); got != tc.want {
			t.Errorf("%s: label = %q, want %q", tc.name, got, tc.want)
		}
	}
}
