// Package services defines the business logic for gift generation and the
// featured catalog strip. This file centralizes common service-level error
// values so that they can be consistently returned by service methods and
// checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

// Gift-generation errors.
var (
	// ErrEmptyPrompt is returned when the prompt is empty after trimming.
	ErrEmptyPrompt = errors.New("prompt is required")

	// ErrPromptTooLong is returned when the prompt exceeds the configured
	// maximum length.
	ErrPromptTooLong = errors.New("prompt too long")

	// ErrPromptNotAllowed is returned when the prompt contains a banned
	// term.
	ErrPromptNotAllowed = errors.New("prompt not allowed")

	// ErrRateLimited is returned when the client exceeded the short-window
	// request count.
	ErrRateLimited = errors.New("too many requests")

	// ErrDailyLimitReached is returned when the client exceeded the
	// calendar-day request count.
	ErrDailyLimitReached = errors.New("daily limit reached")
)
