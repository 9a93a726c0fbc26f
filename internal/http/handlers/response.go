// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all endpoints.
// The API's error contract is a single-field JSON envelope; the message is the
// whole interface, so handlers must pass the exact wording clients key on.
//
// Conventions:
//   - All error responses return an ErrorResponse.
//   - `fail()` centralizes error formatting and ensures 5xx responses are
//     logged with request context for observability.
//   - `ok()` simplifies writing success responses in a consistent shape.
//
// Example error response:
//
//	HTTP/1.1 429 Too Many Requests
//	{ "error": "Too many requests, please wait" }
//
// Example success response:
//
//	HTTP/1.1 200 OK
//	{ "query_summary": "...", "recipient": "for_her", "budget_max": 50, "gifts": [...] }
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/momently/go-gift-backend/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
//
// Error carries a human-readable description that doubles as the
// machine-keyed contract: clients branch on the exact message text.
//
// This struct is used in OpenAPI documentation via Swagger annotations.
type ErrorResponse struct {
	// Human-readable message, stable across releases
	Error string `json:"error" example:"Prompt is required"`
}

// fail aborts the request with a structured error and logs server-side errors.
//
// It constructs an ErrorResponse, writes it as JSON with the given HTTP status,
// and calls gin.Context.AbortWithStatusJSON to stop further processing.
//
// Server errors (>=500) are logged using the request-scoped logger from middleware.
func fail(c *gin.Context, status int, msg string) {
	// Log 5xx (server-side) with request-scoped logger
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg) }

// ok writes a success JSON response.
//
// It serializes `body` as JSON with the given HTTP status code.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
