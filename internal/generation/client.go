// Package generation is the sole gateway to the external text-generation
// service. Providers are raw HTTP clients behind a small interface; every
// failure surfaces as a single opaque *Error so callers treat all provider
// trouble uniformly: do not mutate state, return to the caller, retry later.
package generation

import (
	"context"
	"fmt"
)

// Client defines the minimal interface the workflow uses to call the
// text-generation service.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Error wraps any provider failure. The internal taxonomy (rate limit,
// quota, transport, parse) is opaque to callers; Status is kept for
// diagnostics only.
type Error struct {
	Provider string
	Status   int
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s generation failed (status %d): %s", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("%s generation failed: %s", e.Provider, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func failf(provider string, status int, format string, args ...interface{}) *Error {
	return &Error{Provider: provider, Status: status, Message: fmt.Sprintf(format, args...)}
}

func failErr(provider, message string, err error) *Error {
	return &Error{Provider: provider, Message: message, Err: err}
}
