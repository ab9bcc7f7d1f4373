package quiz

import (
	"math"
	"time"
)

// GradedAnswer is the canonical, scored form of one question's response.
// Immutable once produced for a given submission.
type GradedAnswer struct {
	QuestionID       string       `json:"questionId"`
	UserAnswer       string       `json:"userAnswer"`
	CorrectAnswer    string       `json:"correctAnswer"`
	IsCorrect        bool         `json:"isCorrect"`
	Similarity       *int         `json:"similarity,omitempty"` // 0-100
	TimeSpentSeconds int          `json:"timeSpentSeconds"`
	Type             QuestionType `json:"type"`
}

// QuizResult is one completed attempt's outcome.
//
// Invariants: Score equals the count of correct question results,
// Percentage equals round(100*Score/MaxScore), and MaxScore equals
// len(QuestionResults) unless the result was repaired from partial data,
// in which case it is the quiz's declared question count.
type QuizResult struct {
	QuizID          string         `json:"quizId"`
	Slug            string         `json:"slug"`
	Title           string         `json:"title"`
	QuizType        string         `json:"quizType"`
	Score           int            `json:"score"`
	MaxScore        int            `json:"maxScore"`
	Percentage      int            `json:"percentage"`
	CompletedAt     time.Time      `json:"completedAt"`
	QuestionResults []GradedAnswer `json:"questionResults"`

	// Repaired marks a result that was re-derived from partial stored
	// data rather than read back clean. Kept distinct so tests and
	// telemetry can tell the two apart.
	Repaired bool `json:"repaired,omitempty"`
}

// Percent computes round(100*score/max), clamped to [0,100].
// A zero max yields 0.
func Percent(score, max int) int {
	if max <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(score) / float64(max)))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Consistent reports whether the result satisfies its own invariants.
// Stored snapshots are never trusted blindly; callers recompute when
// this returns false.
func (r *QuizResult) Consistent() bool {
	correct := 0
	for _, ga := range r.QuestionResults {
		if ga.IsCorrect {
			correct++
		}
	}
	if r.Score != correct {
		return false
	}
	if r.MaxScore < len(r.QuestionResults) || r.MaxScore <= 0 {
		return false
	}
	return r.Percentage == Percent(r.Score, r.MaxScore)
}

// Recompute rebuilds Score, MaxScore and Percentage from QuestionResults.
// declaredCount, when positive, overrides MaxScore for partial results so
// an attempt repaired from an incomplete snapshot is still scored against
// the full quiz length.
func (r *QuizResult) Recompute(declaredCount int) {
	correct := 0
	for _, ga := range r.QuestionResults {
		if ga.IsCorrect {
			correct++
		}
	}
	r.Score = correct
	r.MaxScore = len(r.QuestionResults)
	if declaredCount > r.MaxScore {
		r.MaxScore = declaredCount
	}
	r.Percentage = Percent(r.Score, r.MaxScore)
}
