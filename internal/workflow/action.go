package workflow

import "fmt"

// Action is one requested workflow step. Modeled as a closed enum so the
// engine's dispatch is an exhaustive switch; adding an action is a
// compile-visible change, not a new string case.
type Action string

const (
	// ActionWrite drafts a section from its writer instruction.
	ActionWrite Action = "write"
	// ActionReview critiques a drafted section; produces feedback only.
	ActionReview Action = "review"
	// ActionUpdate revises a draft from reviewer feedback and accepts it.
	ActionUpdate Action = "update"
	// ActionFinalReview assembles the document and reviews it as a whole.
	ActionFinalReview Action = "final_review"

	// NextAssemblePRD is advisory only: returned as the next action after
	// the last section completes. Callers respond with final_review.
	NextAssemblePRD = "assemble_prd"
)

// ParseAction validates a caller-supplied action string.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionWrite, ActionReview, ActionUpdate, ActionFinalReview:
		return Action(s), nil
	default:
		return "", fmt.Errorf("unknown action %q", s)
	}
}
