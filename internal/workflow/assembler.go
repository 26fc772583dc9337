package workflow

import (
	"context"

	"prdforge/internal/generation"
	"prdforge/internal/logging"
	"prdforge/internal/prompt"
	"prdforge/internal/session"
)

// AssemblePRD merges the accepted sections into a single coherent
// document via the generation client. Sections are presented in section
// order regardless of the order they were completed in.
func AssemblePRD(ctx context.Context, client generation.Client, reg *prompt.Registry, sess *session.Session) (string, error) {
	timer := logging.StartTimer(logging.CategoryWorkflow, "assemble")
	defer timer.Stop()

	p := prompt.AssemblePrompt(reg.AssembleInstruction(), sess.CompletedSections)
	return client.CompleteWithSystem(ctx, sess.SystemPrompt, p)
}

// FinalReview scores the assembled document against the session's
// criteria. The assembled text is passed through unchanged; only the
// critique comes back.
func FinalReview(ctx context.Context, client generation.Client, reg *prompt.Registry, assembled, systemPrompt, criteria string) (string, error) {
	timer := logging.StartTimer(logging.CategoryWorkflow, "final_review")
	defer timer.Stop()

	p := prompt.FinalReviewPrompt(reg.FinalReviewInstruction(), assembled, criteria)
	return client.CompleteWithSystem(ctx, systemPrompt, p)
}

// ExportDocument returns the consolidated PRD for a completed session.
// When the session never went through final_review, assembleFirst allows
// an on-demand assembly without persisting it; otherwise ErrNotReady.
func (e *Engine) ExportDocument(ctx context.Context, sessionID string, assembleFirst bool) (*session.Session, string, error) {
	sess, err := e.store.Get(sessionID)
	if err != nil {
		return nil, "", err
	}

	if sess.ConsolidatedPRD != "" {
		return sess, sess.ConsolidatedPRD, nil
	}
	if sess.Status != session.StatusCompleted && !assembleFirst {
		return nil, "", ErrNotReady
	}
	if len(sess.CompletedSections) == 0 {
		return nil, "", ErrNotReady
	}

	assembled, err := AssemblePRD(ctx, e.client, e.prompts.Get(), sess)
	if err != nil {
		return nil, "", err
	}
	return sess, assembled, nil
}
