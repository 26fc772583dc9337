// Package prompt holds the fixed section table, the writer/reviewer
// instruction registry, and the pure prompt composition helpers. Nothing in
// this package performs I/O at composition time; the registry is static
// configuration loaded once (optionally from a YAML pack).
package prompt

import (
	"fmt"
	"sync"

	"prdforge/internal/session"
)

// SectionSpec pairs one document section with its fixed instructions.
// Position in the registry is the section's 1-based id.
type SectionSpec struct {
	Name     string `yaml:"name"`
	Writer   string `yaml:"writer"`
	Reviewer string `yaml:"reviewer"`
}

// Registry holds the per-section instruction tables plus the document-level
// assemble and final-review instructions. Instruction tables and the
// Section ordering must stay in lock-step; Validate enforces that once at
// construction.
type Registry struct {
	sections    []SectionSpec
	assemble    string
	finalReview string
}

// NewRegistry builds a registry and runs the consistency check.
func NewRegistry(sections []SectionSpec, assemble, finalReview string) (*Registry, error) {
	r := &Registry{
		sections:    sections,
		assemble:    assemble,
		finalReview: finalReview,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Default returns the built-in instruction pack.
func Default() *Registry {
	r, err := NewRegistry(defaultSections, defaultAssembleInstruction, defaultFinalReviewInstruction)
	if err != nil {
		// The built-in pack is compile-time data; a mismatch here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return r
}

// Validate checks the instruction tables for configuration bugs: every
// section needs a name and both instructions.
func (r *Registry) Validate() error {
	if len(r.sections) == 0 {
		return fmt.Errorf("prompt registry: no sections configured")
	}
	for i, s := range r.sections {
		if s.Name == "" {
			return fmt.Errorf("prompt registry: section %d has no name", i+1)
		}
		if s.Writer == "" {
			return fmt.Errorf("prompt registry: section %d (%s) has no writer instruction", i+1, s.Name)
		}
		if s.Reviewer == "" {
			return fmt.Errorf("prompt registry: section %d (%s) has no reviewer instruction", i+1, s.Name)
		}
	}
	if r.assemble == "" {
		return fmt.Errorf("prompt registry: no assemble instruction")
	}
	if r.finalReview == "" {
		return fmt.Errorf("prompt registry: no final review instruction")
	}
	return nil
}

// Count returns the number of document sections.
func (r *Registry) Count() int { return len(r.sections) }

// SectionName returns the name for a 0-based index; ok is false when the
// index is outside the configured range.
func (r *Registry) SectionName(index int) (string, bool) {
	if index < 0 || index >= len(r.sections) {
		return "", false
	}
	return r.sections[index].Name, true
}

// WriterInstruction returns the writer instruction for a 0-based index.
func (r *Registry) WriterInstruction(index int) (string, bool) {
	if index < 0 || index >= len(r.sections) {
		return "", false
	}
	return r.sections[index].Writer, true
}

// ReviewerInstruction returns the reviewer instruction for a 0-based index.
func (r *Registry) ReviewerInstruction(index int) (string, bool) {
	if index < 0 || index >= len(r.sections) {
		return "", false
	}
	return r.sections[index].Reviewer, true
}

// AssembleInstruction returns the document assembly instruction.
func (r *Registry) AssembleInstruction() string { return r.assemble }

// FinalReviewInstruction returns the holistic review instruction.
func (r *Registry) FinalReviewInstruction() string { return r.finalReview }

// Sections returns a fresh section table for a new session, in lock-step
// with the instruction tables.
func (r *Registry) Sections() []session.Section {
	out := make([]session.Section, len(r.sections))
	for i, s := range r.sections {
		out[i] = session.Section{
			ID:     i + 1,
			Name:   s.Name,
			Status: session.SectionPending,
		}
	}
	return out
}

// Holder is a swappable registry reference, used when a YAML pack is
// watched for changes. Reads are cheap; swaps happen on reload only.
type Holder struct {
	mu  sync.RWMutex
	reg *Registry
}

// NewHolder wraps a registry.
func NewHolder(reg *Registry) *Holder {
	return &Holder{reg: reg}
}

// Get returns the current registry.
func (h *Holder) Get() *Registry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.reg
}

// Set swaps in a new registry. Callers must have validated it; a pack with
// a different section count is rejected because live sessions index the
// existing table.
func (h *Holder) Set(reg *Registry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if reg.Count() != h.reg.Count() {
		return fmt.Errorf("prompt registry: section count changed from %d to %d; restart required",
			h.reg.Count(), reg.Count())
	}
	h.reg = reg
	return nil
}
