// Package submission is the boundary to the server-side scoring endpoint.
// The engine treats it as an opaque collaborator: one call, two tolerated
// response shapes, failures surfaced as typed errors and never as panics.
package submission

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// Payload is the canonical submission body.
type Payload struct {
	QuizID         string              `json:"quizId"`
	Type           string              `json:"type"`
	Answers        []quiz.GradedAnswer `json:"answers"`
	TotalTime      int                 `json:"totalTime"` // seconds
	Score          int                 `json:"score"`
	TotalQuestions int                 `json:"totalQuestions"`
}

// PayloadFor builds the submission body from a computed result.
func PayloadFor(res *quiz.QuizResult) Payload {
	total := 0
	for _, ga := range res.QuestionResults {
		total += ga.TimeSpentSeconds
	}
	return Payload{
		QuizID:         res.QuizID,
		Type:           res.QuizType,
		Answers:        res.QuestionResults,
		TotalTime:      total,
		Score:          res.Score,
		TotalQuestions: res.MaxScore,
	}
}

// Outcome is the server's answer, in either of the shapes it has been
// known to produce: {success: true, result} or {success: false, error}.
type Outcome struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Submitter sends one attempt's payload to the server. Submission is
// at-most-once per call; retries are the caller's explicit decision.
type Submitter interface {
	Submit(ctx context.Context, p Payload) (*Outcome, error)
}

// ErrServerUnavailable indicates the endpoint could not be reached or
// answered with a server-side failure.
type ErrServerUnavailable struct {
	StatusCode int
	Err        error
}

func (e *ErrServerUnavailable) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("submission endpoint unavailable (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("submission endpoint unavailable: %v", e.Err)
}

func (e *ErrServerUnavailable) Unwrap() error { return e.Err }

// ErrRejected indicates the server understood the submission and refused
// it (a 4xx or an explicit success=false body).
type ErrRejected struct {
	Reason string
}

func (e *ErrRejected) Error() string {
	return "submission rejected: " + e.Reason
}
