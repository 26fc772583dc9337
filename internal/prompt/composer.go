package prompt

import (
	"fmt"
	"sort"
	"strings"

	"prdforge/internal/session"
)

// Composition helpers: pure (fixed instruction, dynamic context) -> prompt
// text transformations. No side effects, no I/O; generation calls stay
// decoupled from formatting concerns.

const systemPreamble = `You are an expert in creating Product Requirement Documents (PRDs).
Your task is to assist in writing high-quality PRDs following the company's format and standards.
Consider the context universe for writing the PRD as the PM input that has been added. The historical PRDs provided should help you with the writing style, clarity and the way of curating the PRD.`

// SystemPrompt derives the per-session system prompt from the problem
// statement and the extracted historical reference documents. Called once
// at intake; the result is immutable for the session's lifetime.
func SystemPrompt(problemStatement string, docs []session.ContextDocument) string {
	var b strings.Builder
	b.WriteString(systemPreamble)
	b.WriteString("\nConsider this problem statement as the input for writing the PRD:\n")
	b.WriteString(problemStatement)

	if len(docs) > 0 {
		b.WriteString("\n\nHistorical context about the PRD process and expectations:")
		for _, doc := range docs {
			b.WriteString("\n\n")
			b.WriteString(doc.Name)
			b.WriteString(":\n")
			b.WriteString(doc.Text)
		}
	}
	return b.String()
}

// WritePrompt embeds the writer instruction, the 1-based section number
// and the problem statement.
func WritePrompt(instruction string, sectionNumber int, problemStatement string) string {
	return fmt.Sprintf(`%s

Please write section %d of the PRD for this problem statement:

%s`, instruction, sectionNumber, problemStatement)
}

// ReviewPrompt embeds the reviewer instruction, the drafted content, and
// the optional scoring criteria.
func ReviewPrompt(instruction string, sectionNumber int, content, scoringCriteria string) string {
	var b strings.Builder
	b.WriteString(instruction)
	fmt.Fprintf(&b, "\n\nHere is the content for section %d:\n\n%s\n", sectionNumber, content)
	if scoringCriteria != "" {
		fmt.Fprintf(&b, "\nUse the following scoring criteria: %s\n", scoringCriteria)
	}
	b.WriteString("\nPlease review this section and provide feedback along with a score on a scale of 1-10.")
	return b.String()
}

// UpdatePrompt embeds the writer instruction, the prior content, and the
// reviewer's feedback, instructing a revision.
func UpdatePrompt(instruction string, sectionNumber int, content, feedback string) string {
	return fmt.Sprintf(`%s

You previously wrote this content for section %d:

%s

The reviewer provided this feedback:

%s

Please update the section based on this feedback.`, instruction, sectionNumber, content, feedback)
}

// AssemblePrompt concatenates every completed section in ascending section
// order, each prefixed with its label, wrapped in the assemble instruction.
func AssemblePrompt(instruction string, completed map[int]string) string {
	ids := make([]int, 0, len(completed))
	for id := range completed {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var sections strings.Builder
	for i, id := range ids {
		if i > 0 {
			sections.WriteString("\n\n")
		}
		fmt.Fprintf(&sections, "Section %d: %s", id, completed[id])
	}

	return fmt.Sprintf(`%s

Here are all the sections:

%s`, instruction, sections.String())
}

// FinalReviewPrompt wraps the assembled document in the holistic review
// instruction.
func FinalReviewPrompt(instruction, assembled, scoringCriteria string) string {
	var b strings.Builder
	b.WriteString(instruction)
	b.WriteString("\n\nReview the complete PRD document below:\n\n")
	b.WriteString(assembled)
	b.WriteString("\n")
	if scoringCriteria != "" {
		fmt.Fprintf(&b, "\nUse the following scoring criteria: %s\n", scoringCriteria)
	}
	b.WriteString("\nPlease provide an overall assessment of the PRD quality, with scores for each section and an overall score on a scale of 1-10.")
	return b.String()
}
