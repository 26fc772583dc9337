// Package workflow implements the PRD generation state machine: per
// section {write -> review -> update}, then {assemble -> final_review}
// for the whole document. The engine composes prompts, calls the
// generation client, and persists results; any generation failure leaves
// the session byte-identical so the same action can be retried.
package workflow

import (
	"context"
	"fmt"

	"prdforge/internal/generation"
	"prdforge/internal/logging"
	"prdforge/internal/prompt"
	"prdforge/internal/session"
)

// Result is the engine's answer to one advance call. SectionNumber is
// 1-based (human addressing); NextSectionNumber is the 0-based index for
// the caller's next request, nil once all sections are done.
type Result struct {
	SessionID         string  `json:"sessionId"`
	SectionNumber     int     `json:"sectionNumber,omitempty"`
	Content           string  `json:"content,omitempty"`
	Feedback          string  `json:"feedback,omitempty"`
	NextAction        string  `json:"nextAction,omitempty"`
	NextSectionNumber *int    `json:"nextSectionNumber"`
	Status            string  `json:"status,omitempty"`
}

// Engine sequences the workflow. It trusts the caller-declared action:
// out-of-order calls (an update before any review produced feedback) are a
// caller error and are not validated here.
type Engine struct {
	store   session.Store
	client  generation.Client
	prompts *prompt.Holder
}

// NewEngine wires the state machine to its collaborators.
func NewEngine(store session.Store, client generation.Client, prompts *prompt.Holder) *Engine {
	return &Engine{store: store, client: client, prompts: prompts}
}

// CreateSession is the intake operation: extracted problem statement and
// reference documents in, fresh session out.
func (e *Engine) CreateSession(problemStatement string, docs []session.ContextDocument, scoringCriteria string) (*session.Session, error) {
	return e.store.Create(problemStatement, docs, scoringCriteria)
}

// Session returns the current state of a session.
func (e *Engine) Session(id string) (*session.Session, error) {
	return e.store.Get(id)
}

// Advance performs one workflow step for the session. sectionIndex is
// 0-based. content carries the current draft for review/update; feedback
// carries the reviewer critique for update.
//
// On any error no session state has been mutated, so replaying the same
// action is safe.
func (e *Engine) Advance(ctx context.Context, sessionID string, action Action, sectionIndex int, content, feedback string) (*Result, error) {
	sess, err := e.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	logging.Workflow("advance session=%s action=%s section=%d", sessionID, action, sectionIndex)

	switch action {
	case ActionWrite:
		return e.write(ctx, sess, sectionIndex)
	case ActionReview:
		return e.review(ctx, sess, sectionIndex, content)
	case ActionUpdate:
		return e.update(ctx, sess, sectionIndex, content, feedback)
	case ActionFinalReview:
		return e.finalReview(ctx, sess)
	}
	// Unreachable when the action came through ParseAction.
	return nil, fmt.Errorf("unknown action %q", action)
}

func (e *Engine) write(ctx context.Context, sess *session.Session, sectionIndex int) (*Result, error) {
	reg := e.prompts.Get()
	instruction, ok := reg.WriterInstruction(sectionIndex)
	if !ok {
		logging.WorkflowError("write: section index %d outside configured range %d", sectionIndex, reg.Count())
		return nil, &UnknownSectionError{Index: sectionIndex, Limit: reg.Count()}
	}

	sectionNumber := sectionIndex + 1
	p := prompt.WritePrompt(instruction, sectionNumber, sess.ProblemStatement)

	content, err := e.client.CompleteWithSystem(ctx, sess.SystemPrompt, p)
	if err != nil {
		return nil, err
	}

	// Success: the pointer advances optimistically, marking the section
	// under work in_progress. completed never regresses on a replay.
	if _, err := e.store.Update(sess.ID, func(s *session.Session) {
		if sec := s.SectionByID(sectionNumber); sec != nil && sec.Status == session.SectionPending {
			sec.Status = session.SectionInProgress
		}
	}); err != nil {
		return nil, err
	}

	next := sectionIndex
	return &Result{
		SessionID:         sess.ID,
		SectionNumber:     sectionNumber,
		Content:           content,
		NextAction:        string(ActionReview),
		NextSectionNumber: &next,
	}, nil
}

func (e *Engine) review(ctx context.Context, sess *session.Session, sectionIndex int, content string) (*Result, error) {
	reg := e.prompts.Get()
	instruction, ok := reg.ReviewerInstruction(sectionIndex)
	if !ok {
		return nil, &UnknownSectionError{Index: sectionIndex, Limit: reg.Count()}
	}

	sectionNumber := sectionIndex + 1
	p := prompt.ReviewPrompt(instruction, sectionNumber, content, sess.ScoringCriteria)

	feedback, err := e.client.CompleteWithSystem(ctx, sess.SystemPrompt, p)
	if err != nil {
		return nil, err
	}

	// Review produces critique only; CompletedSections stays untouched.
	next := sectionIndex
	return &Result{
		SessionID:         sess.ID,
		SectionNumber:     sectionNumber,
		Feedback:          feedback,
		NextAction:        string(ActionUpdate),
		NextSectionNumber: &next,
	}, nil
}

func (e *Engine) update(ctx context.Context, sess *session.Session, sectionIndex int, content, feedback string) (*Result, error) {
	reg := e.prompts.Get()
	instruction, ok := reg.WriterInstruction(sectionIndex)
	if !ok {
		return nil, &UnknownSectionError{Index: sectionIndex, Limit: reg.Count()}
	}

	sectionNumber := sectionIndex + 1
	p := prompt.UpdatePrompt(instruction, sectionNumber, content, feedback)

	revised, err := e.client.CompleteWithSystem(ctx, sess.SystemPrompt, p)
	if err != nil {
		return nil, err
	}

	if err := e.store.SetSectionContent(sess.ID, sectionNumber, revised); err != nil {
		return nil, err
	}
	if _, err := e.store.Update(sess.ID, func(s *session.Session) {
		if sec := s.SectionByID(sectionNumber); sec != nil {
			sec.Status = session.SectionCompleted
		}
	}); err != nil {
		return nil, err
	}

	result := &Result{
		SessionID:     sess.ID,
		SectionNumber: sectionNumber,
		Content:       revised,
	}
	if sectionNumber < reg.Count() {
		next := sectionIndex + 1
		result.NextAction = string(ActionWrite)
		result.NextSectionNumber = &next
	} else {
		// All sections done.
		result.NextAction = NextAssemblePRD
		result.NextSectionNumber = nil
	}

	logging.Workflow("section %d accepted for session=%s next=%s", sectionNumber, sess.ID, result.NextAction)
	return result, nil
}

func (e *Engine) finalReview(ctx context.Context, sess *session.Session) (*Result, error) {
	reg := e.prompts.Get()

	assembled, err := AssemblePRD(ctx, e.client, reg, sess)
	if err != nil {
		return nil, err
	}

	review, err := FinalReview(ctx, e.client, reg, assembled, sess.SystemPrompt, sess.ScoringCriteria)
	if err != nil {
		// Assembly succeeded but the review did not; the session stays
		// untouched so the whole final_review can be replayed.
		return nil, err
	}

	if _, err := e.store.Update(sess.ID, func(s *session.Session) {
		s.ConsolidatedPRD = assembled
		s.FinalReview = review
		s.Status = session.StatusCompleted
	}); err != nil {
		return nil, err
	}

	logging.Workflow("session=%s completed", sess.ID)
	return &Result{
		SessionID: sess.ID,
		Content:   assembled,
		Feedback:  review,
		Status:    string(session.StatusCompleted),
	}, nil
}
