// Package domain defines the core value types of the gift-recommendation
// service: catalog products, derived prompt facets, and the response shapes
// returned by the public API. All types are immutable value objects; nothing
// in this package is persisted.
package domain

import "fmt"

// Recipient identifies who the gift is for, derived from the prompt.
type Recipient string

// Recipient values, in classifier priority order. Unknown is the neutral
// default when no pattern matches.
const (
	RecipientHer     Recipient = "for_her"
	RecipientHim     Recipient = "for_him"
	RecipientParents Recipient = "for_parents"
	RecipientFriends Recipient = "for_friends"
	RecipientKids    Recipient = "for_kids"
	RecipientUnknown Recipient = "unknown"
)

// Urgency identifies how fast the gift needs to arrive.
type Urgency string

// Urgency values, in classifier priority order. UrgencyLocal exists in the
// catalog but is never produced by the classifier; UrgencyNone is the neutral
// default.
const (
	UrgencyTomorrow Urgency = "tomorrow"
	UrgencyThisWeek Urgency = "this_week"
	UrgencyDigital  Urgency = "digital"
	UrgencyLocal    Urgency = "local"
	UrgencyNone     Urgency = "none"
)

// Product is a single gift catalog entry. Products are defined once at
// process start and shared read-only between pools; a product may appear in
// more than one pool.
//
// Fields:
//   - ID: unique within its pool.
//   - Price: non-negative, currency-agnostic units.
//   - Reason: short human-readable justification shown to the user; also
//     scanned by the scorer for interest-keyword overlap.
//   - RecipientTags / InterestTags / UrgencyTags: small closed vocabularies
//     identifying the pools the product was curated for.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	ImageURL      string   `json:"image_url"`
	BuyURL        string   `json:"buy_url"`
	Reason        string   `json:"reason"`
	RecipientTags []string `json:"recipient_tags"`
	InterestTags  []string `json:"interest_tags"`
	UrgencyTags   []string `json:"urgency_tags"`
}

// Gift is a Product projected for client display. Price is pre-formatted as
// a dollar string and Category carries a single coarse facet label.
//
// Category is always "recipient" regardless of which facet actually selected
// the product. That mirrors the shipped behavior; see the service tests for
// the pinned deviation.
type Gift struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	ImageURL string `json:"image_url"`
	Reason   string `json:"reason"`
	BuyURL   string `json:"buy_url"`
	Category string `json:"category"`
}

// NewGift projects a catalog product into its client display shape.
func NewGift(p Product) Gift {
	return Gift{
		ID:       p.ID,
		Name:     p.Name,
		Price:    fmt.Sprintf("$%.0f", p.Price),
		ImageURL: p.ImageURL,
		Reason:   p.Reason,
		BuyURL:   p.BuyURL,
		Category: "recipient",
	}
}

// FacetSet holds the facets derived from a single prompt. It is a pure
// function of the prompt text: same prompt, same facets.
//
// BudgetMax is nil when the prompt contained no digits. Interests preserves
// the declaration order of the keyword groups, not the order of appearance
// in the prompt.
type FacetSet struct {
	Recipient Recipient
	BudgetMax *int
	Interests []string
	Urgency   Urgency
}

// GiftResponse is the success body of POST /generate-gifts.
type GiftResponse struct {
	QuerySummary string    `json:"query_summary"`
	Recipient    Recipient `json:"recipient"`
	BudgetMax    *int      `json:"budget_max"`
	Gifts        []Gift    `json:"gifts"`
}

// FeaturedProduct is a Gift annotated with the display label of the pool it
// was curated for, used by the landing page's featured strip.
type FeaturedProduct struct {
	Gift
	Label string `json:"label"`
}
