// Gift HTTP handlers.
//
// This file exposes the storefront API:
//   - POST /generate-gifts     (prompt in, scored gift shortlist out)
//   - GET  /products/featured  (labeled landing-strip products)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. Client identity is derived from
// proxy headers here so the services stay transport-agnostic.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/momently/go-gift-backend/internal/domain"
	"github.com/momently/go-gift-backend/internal/services"
	"github.com/momently/go-gift-backend/internal/sysutil"
	"github.com/momently/go-gift-backend/internal/utils"
)

// Client-facing error messages. These are contract text: the storefront keys
// its UI states on the exact wording, so changes here are breaking changes.
const (
	msgPromptRequired   = "Prompt is required"
	msgPromptTooLong    = "Prompt too long"
	msgPromptNotAllowed = "Prompt not allowed"
	msgRateLimited      = "Too many requests, please wait"
	msgDailyLimited     = "Daily limit reached, try again tomorrow"
	msgGenerateFailed   = "Unable to generate gifts"
)

//
// Service contracts (context-aware)
//

// GiftService defines the gift-generation operation consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type GiftService interface {
	// Generate runs the full prompt-to-shortlist pipeline for one client.
	Generate(ctx context.Context, client, prompt string) (*domain.GiftResponse, error)
}

// CatalogService defines curated product retrieval operations.
type CatalogService interface {
	// Featured returns count labeled products, sponsored picks first.
	Featured(ctx context.Context, count int) []domain.FeaturedProduct
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for gift generation and the catalog.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	giftSvc    GiftService
	catalogSvc CatalogService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(giftSvc GiftService, catalogSvc CatalogService) *Handlers {
	return &Handlers{giftSvc: giftSvc, catalogSvc: catalogSvc}
}

// clientAddress derives the caller identity used to key usage limits: the
// first hop of X-Forwarded-For, then X-Real-IP, then "unknown". The socket
// address is deliberately not used; behind the expected proxy setup it would
// collapse every caller onto one key.
func clientAddress(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return "unknown"
	}
	var forwarded string
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		forwarded = strings.TrimSpace(first)
	}
	if addr := sysutil.FirstNonEmpty(forwarded, c.GetHeader("X-Real-IP")); addr != "" {
		return addr
	}
	return "unknown"
}

//
// DTOs
//

// GenerateGiftsRequest is the JSON payload for generating a gift shortlist.
type GenerateGiftsRequest struct {
	// Prompt is the shopper's free-text description of who the gift is for.
	Prompt string `json:"prompt" example:"birthday gift for my girlfriend, budget $50, loves photography"`
}

// FeaturedResponse wraps the featured product list.
type FeaturedResponse struct {
	Products []domain.FeaturedProduct `json:"products"`
}

//
// Handlers
//

// GenerateGifts godoc
// @ID          generateGifts
// @Summary     Generate a gift shortlist from a free-text prompt
// @Description Classifies the prompt into recipient, budget, interest, and urgency
// @Description facets, then returns a scored, randomized shortlist of gifts.
// @Tags        Gifts
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.GenerateGiftsRequest  true  "Gift prompt payload"
//
// @Success     200  {object}  domain.GiftResponse     "Gift shortlist"
// @Failure     400  {object}  handlers.ErrorResponse  "Missing, oversized, or disallowed prompt"
// @Failure     429  {object}  handlers.ErrorResponse  "Per-minute or daily limit reached"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /generate-gifts [post]
func (h *Handlers) GenerateGifts(c *gin.Context) {
	ctx := c.Request.Context()

	var req GenerateGiftsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgPromptRequired)
		return
	}

	resp, err := h.giftSvc.Generate(ctx, clientAddress(c), req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyPrompt):
			fail(c, http.StatusBadRequest, msgPromptRequired)
		case errors.Is(err, services.ErrPromptTooLong):
			fail(c, http.StatusBadRequest, msgPromptTooLong)
		case errors.Is(err, services.ErrPromptNotAllowed):
			fail(c, http.StatusBadRequest, msgPromptNotAllowed)
		case errors.Is(err, services.ErrRateLimited):
			fail(c, http.StatusTooManyRequests, msgRateLimited)
		case errors.Is(err, services.ErrDailyLimitReached):
			fail(c, http.StatusTooManyRequests, msgDailyLimited)
		default:
			fail(c, http.StatusInternalServerError, msgGenerateFailed)
		}
		return
	}

	ok(c, http.StatusOK, resp)
}

// FeaturedProducts godoc
// @ID          featuredProducts
// @Summary     List featured products for the landing strip
// @Description Returns sponsored partner picks first, then a random sample of the
// @Description catalog, each annotated with a display label.
// @Tags        Catalog
// @Produce     json
//
// @Param       count  query  int  false  "Number of products"  minimum(1) maximum(24) default(8)
//
// @Success     200  {object}  handlers.FeaturedResponse
// @Router      /products/featured [get]
func (h *Handlers) FeaturedProducts(c *gin.Context) {
	ctx := c.Request.Context()

	count := utils.AtoiDefault(c.Query("count"), 0)
	products := h.catalogSvc.Featured(ctx, count)

	ok(c, http.StatusOK, FeaturedResponse{Products: products})
}
