// Package session holds the PRD workflow data model and the keyed session
// stores. A Session is one end-to-end document-generation run; it lives for
// the process lifetime (memory backend) or until deleted (sqlite backend).
package session

import (
	"time"
)

// Status is the document-level session status. Transitions only forward;
// completed is set exactly once, by the final review.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// SectionStatus tracks one section slot. Monotonic:
// pending -> in_progress -> completed, never regresses.
type SectionStatus string

const (
	SectionPending    SectionStatus = "pending"
	SectionInProgress SectionStatus = "in_progress"
	SectionCompleted  SectionStatus = "completed"
)

// ContextDocument is one extracted historical reference document, captured
// at intake and immutable afterwards.
type ContextDocument struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Section is one fixed slot of the target document. ID is 1-based and in
// lock-step with the prompt registry's instruction tables.
type Section struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Status SectionStatus `json:"status"`
}

// Session is one document-generation run.
type Session struct {
	ID               string            `json:"id"`
	ProblemStatement string            `json:"problemStatement"`
	ContextDocuments []ContextDocument `json:"contextDocuments,omitempty"`
	SystemPrompt     string            `json:"systemPrompt"`
	ScoringCriteria  string            `json:"scoringCriteria,omitempty"`

	Sections          []Section      `json:"sections"`
	CompletedSections map[int]string `json:"completedSections"`

	Status          Status `json:"status"`
	ConsolidatedPRD string `json:"consolidatedPrd,omitempty"`
	FinalReview     string `json:"finalReview,omitempty"`

	CreatedAt   time.Time `json:"createdAt"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Clone returns a deep copy so callers cannot mutate store state except
// through Update/SetSectionContent.
func (s *Session) Clone() *Session {
	out := *s
	out.Sections = make([]Section, len(s.Sections))
	copy(out.Sections, s.Sections)
	out.CompletedSections = make(map[int]string, len(s.CompletedSections))
	for k, v := range s.CompletedSections {
		out.CompletedSections[k] = v
	}
	out.ContextDocuments = make([]ContextDocument, len(s.ContextDocuments))
	copy(out.ContextDocuments, s.ContextDocuments)
	return &out
}

// SectionByID returns a pointer to the section with the given 1-based id,
// or nil when out of range.
func (s *Session) SectionByID(id int) *Section {
	for i := range s.Sections {
		if s.Sections[i].ID == id {
			return &s.Sections[i]
		}
	}
	return nil
}

// Completed reports whether both final artifacts are populated.
func (s *Session) Completed() bool {
	return s.Status == StatusCompleted && s.ConsolidatedPRD != "" && s.FinalReview != ""
}
