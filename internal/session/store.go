package session

import (
	"errors"
)

// ErrSessionNotFound reports a lookup with an unknown session id. Terminal
// for the request: the workflow cannot be resumed and must restart.
var ErrSessionNotFound = errors.New("session not found")

// Seed supplies the parts of a new Session the store does not invent
// itself: the fixed section table and the derived system prompt. Both come
// from the prompt registry, injected at store construction so the store
// stays decoupled from prompt formatting.
type Seed struct {
	// Sections returns a fresh copy of the fixed section table.
	Sections func() []Section
	// SystemPrompt derives the per-session system prompt once at intake.
	SystemPrompt func(problemStatement string, docs []ContextDocument) string
}

// Store is process-wide keyed storage of Session entities.
//
// No cross-call concurrency guard is provided: two concurrent mutations to
// the same session interleave last-write-wins. Acceptable for a single-user
// editing flow, documented as such.
type Store interface {
	// Create makes a new session and returns a copy of it.
	Create(problemStatement string, docs []ContextDocument, scoringCriteria string) (*Session, error)

	// Get returns a copy of the session, or ErrSessionNotFound.
	Get(id string) (*Session, error)

	// Update applies mutate to the stored session and refreshes
	// LastUpdated. Returns a copy of the result.
	Update(id string, mutate func(*Session)) (*Session, error)

	// SetSectionContent writes the latest accepted content for a 1-based
	// section id into CompletedSections and refreshes LastUpdated.
	SetSectionContent(id string, sectionID int, content string) error

	// Close releases backend resources.
	Close() error
}
