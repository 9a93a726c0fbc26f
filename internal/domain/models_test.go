package domain

import "testing"

func TestNewGift_ProjectsFields(t *testing.T) {
	p := Product{
		ID:       "her-1",
		Name:     "Pearl Huggie Earrings",
		Price:    48,
		ImageURL: "https://example.test/earrings.jpg",
		BuyURL:   "https://example.test/buy/earrings",
		Reason:   "Timeless shine for daily wear.",
	}

	g := NewGift(p)
	if g.ID != p.ID || g.Name != p.Name || g.ImageURL != p.ImageURL || g.BuyURL != p.BuyURL || g.Reason != p.Reason {
		t.Fatalf("projection lost fields: %+v", g)
	}
	if g.Price != "$48" {
		t.Fatalf("price format: got %q, want %q", g.Price, "$48")
	}
}

func TestNewGift_PriceRoundsToWholeDollars(t *testing.T) {
	cases := []struct {
		price float64
		want  string
	}{
		{0, "$0"},
		{19, "$19"},
		{48.4, "$48"},
		{48.5, "$48"}, // %.0f rounds half to even
		{220, "$220"},
	}
	for _, tc := range cases {
		if got := NewGift(Product{Price: tc.price}).Price; got != tc.want {
			t.Errorf("price %v: got %q, want %q", tc.price, got, tc.want)
		}
	}
}

func TestNewGift_CategoryAlwaysRecipient(t *testing.T) {
	// Category is a fixed label regardless of the product's own tags.
	p := Product{ID: "tech-1", InterestTags: []string{"tech"}}
	if got := NewGift(p).Category; got != "recipient" {
		t.Fatalf("category: got %q, want %q", got, "recipient")
	}
}
