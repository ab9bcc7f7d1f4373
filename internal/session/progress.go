package session

import (
	"time"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/storage"
)

// progressSnapshot is the persisted form of an in-flight attempt. Written
// debounced while answering, read back on Start to resume after a reload.
type progressSnapshot struct {
	AttemptID string                    `json:"attemptId"`
	Index     int                       `json:"index"`
	Answers   map[string]quiz.RawAnswer `json:"answers"`
	Elapsed   map[string]int            `json:"elapsedSeconds"`
	StartedAt time.Time                 `json:"startedAt"`
}

// authFlowMarker is the payload under the global auth-flow key. Its
// presence means a sign-in redirect is in flight and pending results must
// not be cleared.
type authFlowMarker struct {
	Slug      string    `json:"slug"`
	QuizType  string    `json:"quizType"`
	StartedAt time.Time `json:"startedAt"`
}

// ProgressKey is the storage key an attempt's progress snapshot lives
// under.
func ProgressKey(d quiz.Definition) storage.Key {
	return storage.Key{Kind: storage.KindProgress, EntityID: d.Slug, SubKind: d.QuizType}
}
