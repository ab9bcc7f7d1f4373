// Package answers maps per-question-type raw answer records into the one
// canonical GradedAnswer shape used for scoring, storage and submission.
package answers

import (
	"strings"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/similarity"
)

// Normalize converts a raw answer into a GradedAnswer, branching strictly
// by question type. It never fails: malformed or missing input degrades to
// an unanswered GradedAnswer (empty user answer, not correct) so a single
// bad record cannot block scoring the rest of the attempt.
func Normalize(q quiz.Question, raw quiz.RawAnswer, elapsedSeconds int) quiz.GradedAnswer {
	ga := quiz.GradedAnswer{
		QuestionID:       q.ID,
		CorrectAnswer:    q.ReferenceAnswer,
		TimeSpentSeconds: elapsedSeconds,
		Type:             q.Type,
	}

	switch q.Type {
	case quiz.TypeMCQ:
		normalizeMCQ(&ga, q, raw)
	case quiz.TypeCode:
		normalizeCode(&ga, raw)
	case quiz.TypeBlanks:
		normalizeBlanks(&ga, q, raw)
	case quiz.TypeOpenEnded:
		normalizeOpenEnded(&ga, q, raw)
	case quiz.TypeFlashcard:
		normalizeFlashcard(&ga, raw)
	case quiz.TypeOrdering:
		normalizeOrdering(&ga, q, raw)
	default:
		// Unknown type: unanswered. Contributes to maxScore, not score.
	}

	return ga
}

// normalizeMCQ resolves the selected option to display text. Correctness is
// the externally supplied flag when present, else string equality of the
// selection against the reference.
func normalizeMCQ(ga *quiz.GradedAnswer, q quiz.Question, raw quiz.RawAnswer) {
	selected := raw.Selected
	correct := raw.Correct
	if raw.Legacy != nil {
		selected = extractSelected(raw.Legacy)
		correct = extractCorrect(raw.Legacy)
	}
	if selected == "" {
		return
	}

	ga.UserAnswer = q.OptionText(selected)

	if correct != nil {
		ga.IsCorrect = *correct
		return
	}
	ga.IsCorrect = strings.EqualFold(strings.TrimSpace(selected), strings.TrimSpace(q.ReferenceAnswer)) ||
		strings.EqualFold(strings.TrimSpace(ga.UserAnswer), strings.TrimSpace(q.ReferenceAnswer))
}

// normalizeCode uses the submission verbatim. Correctness is not locally
// inferable for code; it must come from a grading collaborator, carried on
// the raw answer. Absent a verdict the answer counts as not correct.
func normalizeCode(ga *quiz.GradedAnswer, raw quiz.RawAnswer) {
	text := raw.Text
	correct := raw.Correct
	if raw.Legacy != nil {
		text = extractText(raw.Legacy, ga.QuestionID)
		correct = extractCorrect(raw.Legacy)
	}
	ga.UserAnswer = text
	if correct != nil {
		ga.IsCorrect = *correct
	}
}

// normalizeBlanks grades a fill-in-the-blank answer. The canonical pass/fail
// rule is the edit-distance tolerance gate (exact normalized match is its
// fast path); an externally supplied flag still wins when present. The
// similarity score is always populated for feedback.
func normalizeBlanks(ga *quiz.GradedAnswer, q quiz.Question, raw quiz.RawAnswer) {
	text := raw.Text
	correct := raw.Correct
	if raw.Legacy != nil {
		text = extractText(raw.Legacy, q.ID)
		correct = extractCorrect(raw.Legacy)
	}
	ga.UserAnswer = text

	score := similarity.Score(q.ReferenceAnswer, text)
	ga.Similarity = &score

	if text == "" {
		return
	}
	if correct != nil {
		ga.IsCorrect = *correct
		return
	}
	ga.IsCorrect = similarity.WithinTolerance(q.ReferenceAnswer, text)
}

// normalizeOpenEnded scores free text against the reference. No single
// correct answer is assumed; the answer counts as correct when its
// similarity verdict is acceptable.
func normalizeOpenEnded(ga *quiz.GradedAnswer, q quiz.Question, raw quiz.RawAnswer) {
	text := raw.Text
	if raw.Legacy != nil {
		text = extractText(raw.Legacy, q.ID)
	}
	ga.UserAnswer = text

	score := similarity.Score(q.ReferenceAnswer, text)
	ga.Similarity = &score

	if text == "" {
		return
	}
	ga.IsCorrect = similarity.Classify(score).Acceptable()
}

// normalizeFlashcard maps a self-reported tri-state to the boolean.
// Anything other than "correct"/"incorrect" is kept as the user answer but
// counts as not correct.
func normalizeFlashcard(ga *quiz.GradedAnswer, raw quiz.RawAnswer) {
	report := raw.SelfReport
	if raw.Legacy != nil {
		report = extractSelfReport(raw.Legacy)
	}
	ga.UserAnswer = report

	ga.IsCorrect = strings.EqualFold(strings.TrimSpace(report), "correct")
}

// normalizeOrdering checks an exact permutation match against the
// canonical order. No partial credit.
func normalizeOrdering(ga *quiz.GradedAnswer, q quiz.Question, raw quiz.RawAnswer) {
	order := raw.Order
	if raw.Legacy != nil {
		order = extractOrder(raw.Legacy)
	}
	if len(order) == 0 {
		return
	}

	ga.UserAnswer = strings.Join(order, ",")
	ga.CorrectAnswer = strings.Join(q.CanonicalOrder, ",")

	if len(order) != len(q.CanonicalOrder) {
		return
	}
	for i, id := range order {
		if id != q.CanonicalOrder[i] {
			return
		}
	}
	ga.IsCorrect = true
}

// NormalizeAll grades every question of a quiz against a raw answer map.
// Questions without an answer become unanswered GradedAnswers, so the
// output always has one entry per question, in quiz order.
func NormalizeAll(questions []quiz.Question, raws map[string]quiz.RawAnswer, elapsed map[string]int) []quiz.GradedAnswer {
	out := make([]quiz.GradedAnswer, 0, len(questions))
	for _, q := range questions {
		out = append(out, Normalize(q, raws[q.ID], elapsed[q.ID]))
	}
	return out
}
