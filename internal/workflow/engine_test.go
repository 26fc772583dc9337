package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prdforge/internal/prompt"
	"prdforge/internal/session"
)

// scriptedClient replays canned responses in order and records every
// prompt it was asked to complete.
type scriptedClient struct {
	responses []string
	calls     int
	systems   []string
	prompts   []string
	err       error
}

func (c *scriptedClient) Complete(ctx context.Context, p string) (string, error) {
	return c.CompleteWithSystem(ctx, "", p)
}

func (c *scriptedClient) CompleteWithSystem(ctx context.Context, system, p string) (string, error) {
	c.calls++
	c.systems = append(c.systems, system)
	c.prompts = append(c.prompts, p)
	if c.err != nil {
		return "", c.err
	}
	if len(c.responses) == 0 {
		return fmt.Sprintf("response %d", c.calls), nil
	}
	resp := c.responses[0]
	c.responses = c.responses[1:]
	return resp, nil
}

func twoSectionRegistry(t *testing.T) *prompt.Registry {
	t.Helper()
	reg, err := prompt.NewRegistry([]prompt.SectionSpec{
		{Name: "Overview", Writer: "Write the overview.", Reviewer: "Review the overview."},
		{Name: "Risks", Writer: "Write the risks.", Reviewer: "Review the risks."},
	}, "Assemble the document.", "Score the document.")
	require.NoError(t, err)
	return reg
}

func newTestEngine(t *testing.T, reg *prompt.Registry, client *scriptedClient) (*Engine, session.Store) {
	t.Helper()
	store := session.NewMemoryStore(session.Seed{
		Sections:     reg.Sections,
		SystemPrompt: prompt.SystemPrompt,
	})
	return NewEngine(store, client, prompt.NewHolder(reg)), store
}

func TestAdvanceFullSectionCycle(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"draft one", "feedback one", "final one",
		"draft two", "feedback two", "final two",
	}}
	reg := twoSectionRegistry(t)
	engine, store := newTestEngine(t, reg, client)

	sess, err := engine.CreateSession("launch a payments dashboard", nil, "clarity over length")
	require.NoError(t, err)

	ctx := context.Background()

	// Section 1: write.
	res, err := engine.Advance(ctx, sess.ID, ActionWrite, 0, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.SectionNumber)
	assert.Equal(t, "draft one", res.Content)
	assert.Equal(t, string(ActionReview), res.NextAction)
	require.NotNil(t, res.NextSectionNumber)
	assert.Equal(t, 0, *res.NextSectionNumber)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.SectionInProgress, got.Sections[0].Status)
	assert.Contains(t, client.prompts[0], "Write the overview.")
	assert.Contains(t, client.prompts[0], "launch a payments dashboard")

	// Section 1: review. No state should change.
	res, err = engine.Advance(ctx, sess.ID, ActionReview, 0, "draft one", "")
	require.NoError(t, err)
	assert.Equal(t, "feedback one", res.Feedback)
	assert.Empty(t, res.Content)
	assert.Equal(t, string(ActionUpdate), res.NextAction)
	require.NotNil(t, res.NextSectionNumber)
	assert.Equal(t, 0, *res.NextSectionNumber)

	got, err = store.Get(sess.ID)
	require.NoError(t, err)
	assert.Empty(t, got.CompletedSections)
	assert.Contains(t, client.prompts[1], "clarity over length")

	// Section 1: update persists the revision and advances.
	res, err = engine.Advance(ctx, sess.ID, ActionUpdate, 0, "draft one", "feedback one")
	require.NoError(t, err)
	assert.Equal(t, "final one", res.Content)
	assert.Equal(t, string(ActionWrite), res.NextAction)
	require.NotNil(t, res.NextSectionNumber)
	assert.Equal(t, 1, *res.NextSectionNumber)

	got, err = store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "final one", got.CompletedSections[1])
	assert.Equal(t, session.SectionCompleted, got.Sections[0].Status)
	assert.Equal(t, session.SectionPending, got.Sections[1].Status)
}

func TestAdvanceLastSectionSignalsAssembly(t *testing.T) {
	client := &scriptedClient{}
	reg := twoSectionRegistry(t)
	engine, store := newTestEngine(t, reg, client)

	sess, err := engine.CreateSession("problem", nil, "")
	require.NoError(t, err)

	_, err = store.Update(sess.ID, func(s *session.Session) {
		s.CompletedSections[1] = "done one"
		s.Sections[0].Status = session.SectionCompleted
	})
	require.NoError(t, err)

	res, err := engine.Advance(context.Background(), sess.ID, ActionUpdate, 1, "draft two", "feedback")
	require.NoError(t, err)
	assert.Equal(t, NextAssemblePRD, res.NextAction)
	assert.Nil(t, res.NextSectionNumber)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Len(t, got.CompletedSections, 2)
	assert.Equal(t, session.StatusInProgress, got.Status)
}

func TestFinalReviewCompletesSession(t *testing.T) {
	client := &scriptedClient{responses: []string{"assembled document", "score: 9/10"}}
	reg := twoSectionRegistry(t)
	engine, store := newTestEngine(t, reg, client)

	sess, err := engine.CreateSession("problem", nil, "criteria text")
	require.NoError(t, err)
	_, err = store.Update(sess.ID, func(s *session.Session) {
		s.CompletedSections[1] = "one"
		s.CompletedSections[2] = "two"
		for i := range s.Sections {
			s.Sections[i].Status = session.SectionCompleted
		}
	})
	require.NoError(t, err)

	res, err := engine.Advance(context.Background(), sess.ID, ActionFinalReview, 0, "", "")
	require.NoError(t, err)
	assert.Equal(t, "assembled document", res.Content)
	assert.Equal(t, "score: 9/10", res.Feedback)
	assert.Equal(t, string(session.StatusCompleted), res.Status)
	assert.Nil(t, res.NextSectionNumber)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusCompleted, got.Status)
	assert.Equal(t, "assembled document", got.ConsolidatedPRD)
	assert.Equal(t, "score: 9/10", got.FinalReview)
	assert.True(t, got.Completed())

	// Assembly prompt must carry both sections in order.
	require.Equal(t, 2, client.calls)
	oneIdx := strings.Index(client.prompts[0], "one")
	twoIdx := strings.Index(client.prompts[0], "two")
	assert.True(t, oneIdx >= 0 && twoIdx > oneIdx, "sections out of order in assembly prompt: %q", client.prompts[0])
	assert.Contains(t, client.prompts[1], "assembled document")
	assert.Contains(t, client.prompts[1], "criteria text")
}

func TestAdvanceUnknownSession(t *testing.T) {
	engine, _ := newTestEngine(t, twoSectionRegistry(t), &scriptedClient{})

	_, err := engine.Advance(context.Background(), "no-such-id", ActionWrite, 0, "", "")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestAdvanceUnknownSectionIndex(t *testing.T) {
	client := &scriptedClient{}
	engine, _ := newTestEngine(t, twoSectionRegistry(t), client)

	sess, err := engine.CreateSession("problem", nil, "")
	require.NoError(t, err)

	for _, action := range []Action{ActionWrite, ActionReview, ActionUpdate} {
		_, err = engine.Advance(context.Background(), sess.ID, action, 7, "c", "f")
		var unknown *UnknownSectionError
		require.ErrorAs(t, err, &unknown, "action %s", action)
		assert.Equal(t, 7, unknown.Index)
		assert.Equal(t, 2, unknown.Limit)
	}
	assert.Zero(t, client.calls, "out-of-range index must fail before any generation call")
}

func TestGenerationFailureLeavesSessionUntouched(t *testing.T) {
	client := &scriptedClient{err: errors.New("provider overloaded")}
	engine, store := newTestEngine(t, twoSectionRegistry(t), client)

	sess, err := engine.CreateSession("problem", nil, "")
	require.NoError(t, err)
	before, err := store.Get(sess.ID)
	require.NoError(t, err)

	for _, action := range []Action{ActionWrite, ActionReview, ActionUpdate, ActionFinalReview} {
		_, err = engine.Advance(context.Background(), sess.ID, action, 0, "c", "f")
		require.Error(t, err, "action %s", action)
	}

	after, err := store.Get(sess.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("session mutated by failed generation (-before +after):\n%s", diff)
	}
}

func TestWriteReplayKeepsCompletedSection(t *testing.T) {
	client := &scriptedClient{}
	engine, store := newTestEngine(t, twoSectionRegistry(t), client)

	sess, err := engine.CreateSession("problem", nil, "")
	require.NoError(t, err)
	_, err = store.Update(sess.ID, func(s *session.Session) {
		s.Sections[0].Status = session.SectionCompleted
		s.CompletedSections[1] = "accepted"
	})
	require.NoError(t, err)

	_, err = engine.Advance(context.Background(), sess.ID, ActionWrite, 0, "", "")
	require.NoError(t, err)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.SectionCompleted, got.Sections[0].Status)
	assert.Equal(t, "accepted", got.CompletedSections[1])
}

func TestExportDocument(t *testing.T) {
	client := &scriptedClient{responses: []string{"assembled on demand"}}
	engine, store := newTestEngine(t, twoSectionRegistry(t), client)

	sess, err := engine.CreateSession("problem", nil, "")
	require.NoError(t, err)

	// Nothing completed yet: not exportable either way.
	_, _, err = engine.ExportDocument(context.Background(), sess.ID, false)
	assert.ErrorIs(t, err, ErrNotReady)
	_, _, err = engine.ExportDocument(context.Background(), sess.ID, true)
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = store.Update(sess.ID, func(s *session.Session) {
		s.CompletedSections[1] = "one"
		s.CompletedSections[2] = "two"
	})
	require.NoError(t, err)

	// Sections done but no final review: refuse unless asked to assemble.
	_, _, err = engine.ExportDocument(context.Background(), sess.ID, false)
	assert.ErrorIs(t, err, ErrNotReady)

	_, text, err := engine.ExportDocument(context.Background(), sess.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "assembled on demand", text)

	// On-demand assembly is not persisted.
	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ConsolidatedPRD)

	// A consolidated document is served directly, no generation call.
	_, err = store.Update(sess.ID, func(s *session.Session) {
		s.ConsolidatedPRD = "persisted document"
		s.Status = session.StatusCompleted
	})
	require.NoError(t, err)
	calls := client.calls
	_, text, err = engine.ExportDocument(context.Background(), sess.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "persisted document", text)
	assert.Equal(t, calls, client.calls)

	_, _, err = engine.ExportDocument(context.Background(), "missing", false)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestParseAction(t *testing.T) {
	for _, valid := range []string{"write", "review", "update", "final_review"} {
		got, err := ParseAction(valid)
		require.NoError(t, err)
		assert.Equal(t, Action(valid), got)
	}
	_, err := ParseAction("assemble_prd")
	assert.Error(t, err, "assemble_prd is advisory output, not an accepted action")
	_, err = ParseAction("")
	assert.Error(t, err)
}
