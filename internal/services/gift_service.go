// Package services – GiftService
//
// This file implements GiftService, the application-level component that owns
// the gift-generation pipeline: prompt validation, per-client usage limits,
// the short-TTL response cache, facet classification, candidate pool
// assembly, scoring, and randomized selection with fallback broadening.
//
// The pipeline is a fixed ladder; every failure is terminal for the request
// and maps to one of the sentinel errors in errors.go. Selection is
// shuffle-then-sample: scoring decides which candidates survive into the
// selection pool, then a full shuffle favors variety over strict ranking.
//
// Observability: Generate is OpenTelemetry-instrumented; spans carry the
// derived facets rather than the raw prompt.

package services

import (
	"context"
	"math"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/momently/go-gift-backend/internal/catalog"
	"github.com/momently/go-gift-backend/internal/classify"
	"github.com/momently/go-gift-backend/internal/domain"

	// OpenTelemetry
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// summaryMaxRunes is the display-summary cutoff; longer prompts are
	// truncated to summaryTruncRunes plus an ellipsis.
	summaryMaxRunes   = 120
	summaryTruncRunes = 117

	// defaultSummary is the placeholder for an empty summary. Unreachable
	// behind the empty-prompt check, kept for parity with the wire contract.
	defaultSummary = "Gift ideas requested"

	// interestBonus is added per matched interest found in a candidate's
	// name or justification text.
	interestBonus = 5.0

	// budgetWidenFactor widens the budget ceiling when the first selection
	// pass comes back empty.
	budgetWidenFactor = 1.2
)

// bannedRE rejects prompts containing abuse-adjacent terms, as substrings,
// case-insensitively.
var bannedRE = regexp.MustCompile(`(?i)(abuse|weapon|hate|violence|explosive|harm)`)

// UsageLimiter enforces the per-client request counters.
//
// Implementations must be safe for concurrent use. Both methods count the
// call as one request when they allow it.
type UsageLimiter interface {
	// AllowWindow reports whether the client is within the short-window cap.
	AllowWindow(client string) bool
	// AllowDaily reports whether the client is within the calendar-day cap.
	AllowDaily(client string) bool
}

// ResponseCache stores computed gift responses by normalized summary key.
//
// Implementations must be safe for concurrent use.
type ResponseCache interface {
	Get(key string) (domain.GiftResponse, bool)
	Set(key string, resp domain.GiftResponse)
}

// GiftService coordinates validation, limits, caching, and gift selection.
type GiftService struct {
	Limits UsageLimiter
	Cache  ResponseCache

	// Guards
	MaxPromptLen int // max prompt runes
	GiftCount    int // target gifts per response

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGiftService constructs a GiftService. rng is the random source used for
// selection; inject a seeded source in tests for deterministic draws.
func NewGiftService(limits UsageLimiter, cache ResponseCache, maxPromptLen, giftCount int, rng *rand.Rand) *GiftService {
	if maxPromptLen <= 0 {
		maxPromptLen = 240
	}
	if giftCount <= 0 {
		giftCount = 8
	}
	return &GiftService{
		Limits:       limits,
		Cache:        cache,
		MaxPromptLen: maxPromptLen,
		GiftCount:    giftCount,
		rng:          rng,
	}
}

// Generate runs the full pipeline for one prompt from one client and returns
// the response body, either freshly computed or served from cache.
//
// The ladder is strict and every rung terminal: empty prompt, oversized
// prompt, window limit, daily limit, banned terms, then cache lookup, then
// classification and selection.
func (s *GiftService) Generate(ctx context.Context, client, prompt string) (*domain.GiftResponse, error) {
	tr := otel.Tracer("services/GiftService")
	_, span := tr.Start(ctx, "Generate",
		trace.WithAttributes(attribute.Int("prompt.len", utf8.RuneCountInString(prompt))),
	)
	defer span.End()

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		giftGenerations.WithLabelValues("empty_prompt").Inc()
		return nil, ErrEmptyPrompt
	}
	if utf8.RuneCountInString(prompt) > s.MaxPromptLen {
		giftGenerations.WithLabelValues("too_long").Inc()
		return nil, ErrPromptTooLong
	}

	if !s.Limits.AllowWindow(client) {
		giftGenerations.WithLabelValues("rate_limited").Inc()
		return nil, ErrRateLimited
	}
	if !s.Limits.AllowDaily(client) {
		giftGenerations.WithLabelValues("daily_limited").Inc()
		return nil, ErrDailyLimitReached
	}

	if bannedRE.MatchString(prompt) {
		giftGenerations.WithLabelValues("not_allowed").Inc()
		return nil, ErrPromptNotAllowed
	}

	summary := summarize(prompt)
	key := strings.ToLower(summary)
	if cached, ok := s.Cache.Get(key); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		giftGenerations.WithLabelValues("cache_hit").Inc()
		return &cached, nil
	}

	facets := classify.Classify(prompt)
	span.SetAttributes(
		attribute.Bool("cache.hit", false),
		attribute.String("facets.recipient", string(facets.Recipient)),
		attribute.String("facets.urgency", string(facets.Urgency)),
		attribute.StringSlice("facets.interests", facets.Interests),
	)

	selected := s.selectProducts(facets)

	gifts := make([]domain.Gift, 0, len(selected))
	for _, p := range selected {
		gifts = append(gifts, domain.NewGift(p))
	}

	resp := domain.GiftResponse{
		QuerySummary: summary,
		Recipient:    facets.Recipient,
		BudgetMax:    facets.BudgetMax,
		Gifts:        gifts,
	}
	s.Cache.Set(key, resp)
	giftGenerations.WithLabelValues("ok").Inc()
	return &resp, nil
}

// selectProducts assembles the candidate pool for the facets, scores it,
// and draws the bounded random sample with the fallback ladder.
func (s *GiftService) selectProducts(facets domain.FacetSet) []domain.Product {
	all := catalog.All()

	source := assemblePools(facets)
	if len(source) == 0 {
		source = all
	}

	sorted := rankCandidates(source, facets)

	s.mu.Lock()
	defer s.mu.Unlock()

	if sorted == nil {
		// Empty candidate list: fall back to a uniformly shuffled copy of
		// the full union.
		sorted = catalog.Sample(s.rng, all, len(all))
	}

	poolForSelection := sorted
	if len(poolForSelection) == 0 {
		poolForSelection = all
	}
	selected := catalog.Sample(s.rng, poolForSelection, s.GiftCount)

	// Recovery ladder; each step only runs when the prior produced nothing.
	if len(selected) == 0 && facets.BudgetMax != nil {
		ceiling := float64(*facets.BudgetMax) * budgetWidenFactor
		var widened []domain.Product
		for _, p := range source {
			if p.Price <= ceiling {
				widened = append(widened, p)
			}
		}
		if len(widened) > 0 {
			selected = catalog.Sample(s.rng, widened, s.GiftCount)
		}
	}
	if len(selected) == 0 && len(facets.Interests) > 0 {
		selected = catalog.Sample(s.rng, all, s.GiftCount)
	}
	if len(selected) == 0 {
		selected = catalog.Sample(s.rng, all, s.GiftCount)
	}
	return selected
}

// assemblePools concatenates the pools matched by the facets, duplicates
// allowed. An empty result means no facet matched anything.
func assemblePools(facets domain.FacetSet) []domain.Product {
	var out []domain.Product
	if pool, ok := catalog.RecipientPool(facets.Recipient); ok {
		out = append(out, pool...)
	}
	if facets.BudgetMax != nil {
		out = append(out, catalog.BudgetPool(*facets.BudgetMax)...)
	}
	for _, key := range facets.Interests {
		if pool, ok := catalog.InterestPool(key); ok {
			out = append(out, pool...)
		}
	}
	if facets.Urgency != domain.UrgencyNone {
		if pool, ok := catalog.UrgencyPool(facets.Urgency); ok {
			out = append(out, pool...)
		}
	}
	return out
}

// rankCandidates scores candidates by budget proximity and interest-keyword
// overlap, then orders them descending by score. Ties keep input order. A
// nil return means the candidate list was empty.
func rankCandidates(source []domain.Product, facets domain.FacetSet) []domain.Product {
	if len(source) == 0 {
		return nil
	}

	type scoredProduct struct {
		product domain.Product
		score   float64
	}
	scored := make([]scoredProduct, 0, len(source))
	for _, p := range source {
		score := 0.0
		if facets.BudgetMax != nil {
			// Closer price, higher score; negative scores allowed.
			score -= math.Abs(p.Price - float64(*facets.BudgetMax))
		}
		nameLower := strings.ToLower(p.Name)
		reasonLower := strings.ToLower(p.Reason)
		for _, interest := range facets.Interests {
			if strings.Contains(reasonLower, interest) || strings.Contains(nameLower, interest) {
				score += interestBonus
			}
		}
		scored = append(scored, scoredProduct{product: p, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	out := make([]domain.Product, len(scored))
	for i, sp := range scored {
		out[i] = sp.product
	}
	return out
}

// summarize builds the display summary: the prompt verbatim up to 120 runes,
// otherwise truncated to 117 runes plus an ellipsis.
func summarize(prompt string) string {
	if prompt == "" {
		return defaultSummary
	}
	runes := []rune(prompt)
	if len(runes) > summaryMaxRunes {
		return string(runes[:summaryTruncRunes]) + "..."
	}
	return prompt
}
