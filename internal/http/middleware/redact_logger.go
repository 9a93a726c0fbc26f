// Package middleware contains the Gin middleware shared by the HTTP layer.
//
// This file implements RedactingLogger, the access logger used in front of
// the gift API. Prompts are free text about real people ("gift for my wife,
// she loves…"), so the logger is default-safe: request and response bodies
// are never logged, and everything that is logged gets scrubbed first:
//
//   - emails, phone numbers, and UUID-shaped IDs are pattern-redacted in
//     query strings and header values
//   - credential headers (Authorization, Cookie, Set-Cookie, X-Api-Key) are
//     masked outright, plus any extras named in RedactOptions.MaskHeaders
//   - query parameters named in RedactOptions.MaskParams have their whole
//     value masked, for clients that misdirect prompt text into the URL
//
// Scrubbing reduces but does not eliminate leak risk; clients should still
// keep personal text out of query strings and headers.
package middleware

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RedactOptions configures additional scrub behavior for RedactingLogger.
type RedactOptions struct {
	// MaskHeaders names extra HTTP headers whose values are fully replaced
	// with "[REDACTED]". Matching is case-insensitive and merged with the
	// built-in credential headers.
	MaskHeaders []string

	// MaskParams names query parameters whose values are fully replaced with
	// "[REDACTED]" before pattern redaction runs. Matching is
	// case-insensitive; parameter order in the logged query is preserved.
	MaskParams []string
}

// RedactingLogger returns a Gin middleware that logs HTTP requests and
// responses with sensitive values scrubbed.
//
// Each request produces one structured line with method, route path, scrubbed
// query, status, response size, latency, and scrubbed request headers, at
// info level (warn for 4xx, error for 5xx). The request ID is taken from the
// response header when present, falling back to the request header.
//
// NOTE: redact UUIDs *before* phone numbers to avoid the phone pattern
// accidentally matching the digit/hyphen segments of a UUID.
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	// Compile regex patterns once.
	uuidRE := regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`)
	emailRE := regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	// Digits-only phone pattern (prevents matching hex characters from UUIDs).
	// Examples matched: "+1 212-555-1212", "212 555 1212", "(212) 555-1212".
	phoneRE := regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`)

	redact := func(s string) string {
		if s == "" {
			return s
		}
		out := s
		// Order matters: IDs → email → phone (phone is the loosest).
		out = uuidRE.ReplaceAllString(out, "[REDACTED:id]")
		out = emailRE.ReplaceAllString(out, "[REDACTED:email]")
		out = phoneRE.ReplaceAllString(out, "[REDACTED:phone]")
		return out
	}

	// Header mask set (case-insensitive). X-Api-Key carries the affiliate
	// partner key and is always masked.
	maskHeaders := map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
		"x-api-key":     {},
	}
	for _, h := range opts.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			maskHeaders[h] = struct{}{}
		}
	}

	maskParams := make(map[string]struct{}, len(opts.MaskParams))
	for _, p := range opts.MaskParams {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			maskParams[p] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		safeQuery := redact(maskQueryParams(c.Request.URL.RawQuery, maskParams))

		// Scrub headers.
		safeHeaders := make(map[string]string, len(c.Request.Header))
		for k, vv := range c.Request.Header {
			keyLower := strings.ToLower(k)
			val := strings.Join(vv, ", ")
			if _, ok := maskHeaders[keyLower]; ok {
				safeHeaders[k] = "[REDACTED]"
				continue
			}
			safeHeaders[k] = redact(val)
		}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		size := c.Writer.Size()

		reqID := c.Writer.Header().Get("X-Request-ID")
		if reqID == "" {
			reqID = c.GetHeader("X-Request-ID")
		}

		// Severity based on status.
		ev := log.Info()
		switch {
		case status >= 500:
			ev = log.Error()
		case status >= 400:
			ev = log.Warn()
		}

		ev.
			Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", safeQuery).
			Int("status", status).
			Int("bytes", size).
			Dur("latency", latency).
			Interface("headers", safeHeaders).
			Msg("http_request")
	}
}

// maskQueryParams replaces the value of every masked parameter in a raw query
// string with "[REDACTED]". The raw string is rewritten pair by pair, so the
// parameter order and any percent-encoding of untouched values survive.
func maskQueryParams(rawQuery string, masked map[string]struct{}) string {
	if rawQuery == "" || len(masked) == 0 {
		return rawQuery
	}
	pairs := strings.Split(rawQuery, "&")
	for i, pair := range pairs {
		key, _, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		if _, ok := masked[strings.ToLower(key)]; ok {
			pairs[i] = key + "=[REDACTED]"
		}
	}
	return strings.Join(pairs, "&")
}
