// Package services – CatalogService
//
// CatalogService backs the landing page's featured strip: partner-sponsored
// picks first, then a random sample of the catalog union, each annotated
// with a display label derived from the pool the product was curated for.
package services

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/momently/go-gift-backend/internal/catalog"
	"github.com/momently/go-gift-backend/internal/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Featured count bounds; requests outside are clamped.
	featuredMinCount = 1
	featuredMaxCount = 24

	sponsoredLabel = "Partner Pick"
	fallbackLabel  = "Editor's Pick"
)

// CatalogService serves curated product sets that are not prompt-driven.
type CatalogService struct {
	DefaultCount int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewCatalogService constructs a CatalogService with the given default
// featured count and random source.
func NewCatalogService(defaultCount int, rng *rand.Rand) *CatalogService {
	if defaultCount <= 0 {
		defaultCount = 8
	}
	return &CatalogService{
		DefaultCount: defaultCount,
		rng:          rng,
	}
}

// Featured returns count labeled products for the landing strip: every
// sponsored product first, then a random sample of the facet union. A count
// outside [1, 24] is clamped; zero means the default.
func (s *CatalogService) Featured(ctx context.Context, count int) []domain.FeaturedProduct {
	tr := otel.Tracer("services/CatalogService")
	_, span := tr.Start(ctx, "Featured",
		trace.WithAttributes(attribute.Int("count", count)),
	)
	defer span.End()

	if count == 0 {
		count = s.DefaultCount
	}
	if count < featuredMinCount {
		count = featuredMinCount
	}
	if count > featuredMaxCount {
		count = featuredMaxCount
	}

	out := make([]domain.FeaturedProduct, 0, count)
	for _, p := range catalog.Sponsored() {
		if len(out) == count {
			break
		}
		out = append(out, domain.FeaturedProduct{Gift: domain.NewGift(p), Label: sponsoredLabel})
	}

	if remaining := count - len(out); remaining > 0 {
		s.mu.Lock()
		sampled := catalog.Sample(s.rng, catalog.All(), remaining)
		s.mu.Unlock()
		for _, p := range sampled {
			out = append(out, domain.FeaturedProduct{Gift: domain.NewGift(p), Label: s.poolLabel(p)})
		}
	}
	return out
}

// poolLabel derives a human display label from the product's pool tags,
// checking recipient, then interest, then urgency tags. Budget-band products
// carry no tags and fall back to a generic label. Casers are stateful, so a
// fresh one is built per call.
func (s *CatalogService) poolLabel(p domain.Product) string {
	title := cases.Title(language.English)
	if len(p.RecipientTags) > 0 {
		return title.String(strings.ReplaceAll(p.RecipientTags[0], "_", " "))
	}
	if len(p.InterestTags) > 0 {
		return title.String(p.InterestTags[0])
	}
	if len(p.UrgencyTags) > 0 {
		return title.String(strings.ReplaceAll(p.UrgencyTags[0], "_", " "))
	}
	return fallbackLabel
}
