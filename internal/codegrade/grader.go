// Package codegrade is the external grading collaborator for code
// questions. Code correctness is not locally inferable, so grading is
// delegated to a hosted model that answers with a schema-validated
// verdict. The session controller treats the whole package as optional:
// without a grader, code answers simply stay ungraded.
package codegrade

import "context"

// Submission is one code answer to grade.
type Submission struct {
	// QuestionID identifies the question, for logging only.
	QuestionID string

	// Prompt is the question text the learner answered.
	Prompt string

	// Reference is the author's reference solution.
	Reference string

	// Code is the learner's submission, verbatim.
	Code string

	// Language is the submission language hint ("go", "python", ...).
	// May be empty.
	Language string
}

// Verdict is the grader's decision.
type Verdict struct {
	// Correct is the boolean the normalizer consumes.
	Correct bool `json:"correct"`

	// Feedback is a short explanation for display. May be empty.
	Feedback string `json:"feedback"`
}

// Grader judges code submissions.
type Grader interface {
	// Grade evaluates one submission. Implementations must be safe for
	// concurrent use.
	Grade(ctx context.Context, sub Submission) (*Verdict, error)

	// ProviderID returns the model identifier serving the verdicts.
	ProviderID() string
}
