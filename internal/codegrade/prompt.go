package codegrade

import (
	"fmt"
	"strings"
)

// gradingSystemPrompt pins the model to the judge role and the verdict
// contract.
const gradingSystemPrompt = `You are a strict but fair programming exercise grader.
You are given a question, a reference solution, and a learner's submission.
Judge whether the submission solves the question. The submission does not
need to match the reference solution textually; any working approach
counts. Syntax errors, wrong output, or an unrelated answer are incorrect.
Respond with JSON only: {"correct": <bool>, "feedback": "<one short sentence>"}.`

// buildGradingPrompt renders the user message for a submission.
func buildGradingPrompt(sub Submission) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question:\n%s\n\n", strings.TrimSpace(sub.Prompt))
	if sub.Language != "" {
		fmt.Fprintf(&b, "Language: %s\n\n", sub.Language)
	}
	fmt.Fprintf(&b, "Reference solution:\n```\n%s\n```\n\n", strings.TrimSpace(sub.Reference))
	fmt.Fprintf(&b, "Learner submission:\n```\n%s\n```\n", strings.TrimSpace(sub.Code))

	return b.String()
}
