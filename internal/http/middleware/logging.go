// Package middleware contains the Gin middleware shared by the HTTP layer.
//
// This file covers request correlation and the logging/recovery pair:
//
//   - RequestID() gives every request a correlation ID, reusing an incoming
//     X-Request-ID when present.
//   - Logger() emits one structured access log per request and stores a
//     request-scoped zerolog.Logger in the Gin context for handlers to reuse.
//   - Recovery() turns panics into the API's generic 500 error body so that
//     callers never see a stack trace or a Gin default page.
//   - LoggerFrom() retrieves the request-scoped logger (e.g. in a handler:
//     lg.Warn().Str("client", addr).Msg("generation failed")).
//
// Install RequestID first, then the logger, then Recovery, so a recovered
// panic is logged with its correlation ID attached.
package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// requestIDKey is the Gin context key under which the request ID is stored.
	requestIDKey = "requestID"
	// requestIDHeader is the HTTP header used to propagate the correlation ID.
	requestIDHeader = "X-Request-ID"
	// maxQueryLogLength caps the number of bytes of the raw query string logged.
	maxQueryLogLength = 2048

	// internalErrMsg is the fixed message of the API's 500 response. Every
	// error body this service emits is the single-field {"error": ...}
	// envelope, and unexpected faults all collapse to this message.
	internalErrMsg = "Unable to generate gifts"
)

// RequestID attaches (or propagates) a correlation identifier per request.
//
// An incoming X-Request-ID is reused (header lookup is case-insensitive);
// otherwise a fresh UUIDv4 is generated. The ID is echoed on the response
// header and stored in the Gin context under the "requestID" key.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

// Logger writes a structured access log for each request and response.
//
// It records method, route path (falling back to the raw URL when no route
// matched), client address, user agent, referer, correlation ID, request and
// response sizes, status, and latency. The level follows the outcome: error
// for 5xx or when Gin collected errors, warn for 4xx, info otherwise.
//
// The request-scoped logger is stored under the "logger" context key so
// handlers and services can emit enriched lines tied to the same request.
// Place this after RequestID() so logs carry the correlation ID.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rid, _ := c.Get(requestIDKey)
		path := c.FullPath()
		if path == "" {
			// Route not matched (404 and friends).
			path = c.Request.URL.Path
		}

		l := log.With().
			Str("request_id", asString(rid)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("remote_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Str("referer", c.Request.Referer()).
			Str("query", truncate(c.Request.URL.RawQuery, maxQueryLogLength)).
			// ContentLength can be -1 if unknown.
			Int64("bytes_in", c.Request.ContentLength).
			Logger()

		c.Set("logger", &l)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		bytesOut := c.Writer.Size()

		ev := l.With().
			Int("status", status).
			Dur("latency", latency).
			Int("bytes_out", bytesOut).
			Logger()

		switch {
		case len(c.Errors) > 0:
			ev.Error().Str("errors", c.Errors.String()).Msg("request")
		case status >= 500:
			ev.Error().Msg("request")
		case status >= 400:
			ev.Warn().Msg("request")
		default:
			ev.Info().Msg("request")
		}
	}
}

// Recovery intercepts panics, logs the stack trace with the request ID, and
// responds with the API's generic 500 body:
//
//	{ "error": "Unable to generate gifts" }
//
// This matches the envelope the handlers use for every error response, so a
// panic is indistinguishable from any other internal fault to the client.
// When something was already written the status is forced to 500 without a
// body. Place this after Logger() so the panic is logged with context.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				rid, _ := c.Get(requestIDKey)
				log.Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("request_id", asString(rid)).
					Msg("panic recovered")

				if !c.Writer.Written() {
					c.Header("Content-Type", "application/json")
					c.Header(requestIDHeader, asString(rid))
					c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
						"error": internalErrMsg,
					})
					return
				}
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

// LoggerFrom returns the request-scoped zerolog.Logger.
//
// When Logger() did not run for this request a plain fallback logger is
// returned, so callers never need a nil check.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get("logger"); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	l := log.With().Logger()
	return &l
}

// asString converts a context value to a string, returning "" for non-strings.
func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// truncate caps s at max bytes, appending an ellipsis when it cut anything.
// A max <= 0 disables truncation. Byte-wise truncation is fine for log lines.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
