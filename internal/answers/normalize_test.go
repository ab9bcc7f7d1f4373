package answers

import (
	"testing"

	"github.com/abhisek/quizdeck/internal/quiz"
)

func boolPtr(b bool) *bool { return &b }

func mcqQuestion() quiz.Question {
	return quiz.Question{
		ID:   "q1",
		Type: quiz.TypeMCQ,
		Options: []quiz.Option{
			{ID: "a", Text: "An object"},
			{ID: "b", Text: "A function"},
			{ID: "c", Text: "A closure"},
		},
		ReferenceAnswer: "a",
	}
}

func TestNormalize_MCQ_CorrectByReference(t *testing.T) {
	ga := Normalize(mcqQuestion(), quiz.SelectedAnswer("a"), 7)

	if !ga.IsCorrect {
		t.Error("selecting the reference option should be correct")
	}
	if ga.UserAnswer != "An object" {
		t.Errorf("UserAnswer = %q, want display text", ga.UserAnswer)
	}
	if ga.TimeSpentSeconds != 7 {
		t.Errorf("TimeSpentSeconds = %d, want 7", ga.TimeSpentSeconds)
	}
}

func TestNormalize_MCQ_ProvidedFlagWins(t *testing.T) {
	raw := quiz.RawAnswer{Selected: "b", Correct: boolPtr(true)}
	ga := Normalize(mcqQuestion(), raw, 0)
	if !ga.IsCorrect {
		t.Error("externally supplied isCorrect should win over local comparison")
	}
}

func TestNormalize_MCQ_LegacyFieldPriority(t *testing.T) {
	// selectedOptionId outranks the later names.
	raw := quiz.LegacyAnswer(map[string]any{
		"selectedOptionId": "a",
		"userAnswer":       "b",
		"answer":           "c",
	})
	ga := Normalize(mcqQuestion(), raw, 0)
	if ga.UserAnswer != "An object" {
		t.Errorf("UserAnswer = %q, want resolution of selectedOptionId", ga.UserAnswer)
	}
	if !ga.IsCorrect {
		t.Error("expected correct")
	}
}

func TestNormalize_MCQ_Unanswered(t *testing.T) {
	ga := Normalize(mcqQuestion(), quiz.RawAnswer{}, 0)
	if ga.IsCorrect || ga.UserAnswer != "" {
		t.Errorf("empty raw answer should normalize to unanswered, got %+v", ga)
	}
}

func TestNormalize_Code_Verbatim(t *testing.T) {
	q := quiz.Question{ID: "q2", Type: quiz.TypeCode, ReferenceAnswer: "return a + b"}
	ga := Normalize(q, quiz.TextAnswer("func add(a, b int) int { return a + b }"), 30)

	if ga.UserAnswer != "func add(a, b int) int { return a + b }" {
		t.Errorf("code answer should pass through verbatim, got %q", ga.UserAnswer)
	}
	if ga.IsCorrect {
		t.Error("code without an external verdict must not count as correct")
	}

	graded := quiz.RawAnswer{Text: "x", Correct: boolPtr(true)}
	if got := Normalize(q, graded, 0); !got.IsCorrect {
		t.Error("external verdict should be honored")
	}
}

func TestNormalize_Blanks_EditToleranceGate(t *testing.T) {
	q := quiz.Question{ID: "q3", Type: quiz.TypeBlanks, ReferenceAnswer: "object"}

	// One transposition: not a literal match but inside the gate.
	ga := Normalize(q, quiz.TextAnswer("objetc"), 5)
	if !ga.IsCorrect {
		t.Error("objetc should pass the edit tolerance gate")
	}
	if ga.Similarity == nil {
		t.Fatal("similarity should be populated for blanks")
	}
	if *ga.Similarity < 60 || *ga.Similarity > 100 {
		t.Errorf("Similarity = %d, want a high score", *ga.Similarity)
	}

	if got := Normalize(q, quiz.TextAnswer("zebra"), 0); got.IsCorrect {
		t.Error("zebra should not pass the gate")
	}
}

func TestNormalize_Blanks_FilledBlanksMap(t *testing.T) {
	q := quiz.Question{ID: "q3", Type: quiz.TypeBlanks, ReferenceAnswer: "object"}
	raw := quiz.LegacyAnswer(map[string]any{
		"filledBlanks": map[string]any{"q3": "object"},
	})
	ga := Normalize(q, raw, 0)
	if !ga.IsCorrect || ga.UserAnswer != "object" {
		t.Errorf("filledBlanks extraction failed: %+v", ga)
	}
}

func TestNormalize_OpenEnded(t *testing.T) {
	q := quiz.Question{ID: "q4", Type: quiz.TypeOpenEnded, ReferenceAnswer: "a reusable block of code"}

	ga := Normalize(q, quiz.TextAnswer("a reusable block of code"), 0)
	if !ga.IsCorrect || ga.Similarity == nil || *ga.Similarity != 100 {
		t.Errorf("exact open-ended answer should score 100 and be correct: %+v", ga)
	}

	ga = Normalize(q, quiz.TextAnswer("bananas"), 0)
	if ga.IsCorrect {
		t.Error("unrelated open-ended answer should not be correct")
	}
}

func TestNormalize_Flashcard(t *testing.T) {
	q := quiz.Question{ID: "q5", Type: quiz.TypeFlashcard, ReferenceAnswer: "la maison"}

	if ga := Normalize(q, quiz.SelfReportAnswer("correct"), 0); !ga.IsCorrect {
		t.Error("self-reported correct should map to true")
	}
	if ga := Normalize(q, quiz.SelfReportAnswer("incorrect"), 0); ga.IsCorrect {
		t.Error("self-reported incorrect should map to false")
	}
	if ga := Normalize(q, quiz.SelfReportAnswer("the house"), 0); ga.IsCorrect {
		t.Error("free-text self report should not count as correct")
	}
}

func TestNormalize_Ordering(t *testing.T) {
	q := quiz.Question{
		ID:             "q6",
		Type:           quiz.TypeOrdering,
		CanonicalOrder: []string{"s1", "s2", "s3"},
	}

	if ga := Normalize(q, quiz.OrderAnswer([]string{"s1", "s2", "s3"}), 0); !ga.IsCorrect {
		t.Error("exact permutation match should be correct")
	}
	if ga := Normalize(q, quiz.OrderAnswer([]string{"s2", "s1", "s3"}), 0); ga.IsCorrect {
		t.Error("no partial credit for a near-miss permutation")
	}
	if ga := Normalize(q, quiz.OrderAnswer([]string{"s1", "s2"}), 0); ga.IsCorrect {
		t.Error("short permutation must not be correct")
	}
}

func TestNormalize_UnknownType(t *testing.T) {
	q := quiz.Question{ID: "q7", Type: "riddle", ReferenceAnswer: "x"}
	ga := Normalize(q, quiz.TextAnswer("anything"), 0)
	if ga.IsCorrect || ga.UserAnswer != "" {
		t.Errorf("unknown type should normalize to unanswered, got %+v", ga)
	}
}

func TestNormalize_MalformedLegacyNeverPanics(t *testing.T) {
	q := mcqQuestion()
	malformed := []map[string]any{
		nil,
		{},
		{"selectedOptionId": 42.0},
		{"selectedOptionId": []any{"a"}},
		{"isCorrect": "yes"},
		{"filledBlanks": "not a map"},
		{"order": "not a slice"},
	}
	for _, m := range malformed {
		ga := Normalize(q, quiz.LegacyAnswer(m), 0)
		if ga.QuestionID != "q1" {
			t.Errorf("graded answer lost its question id for payload %v", m)
		}
	}
}

func TestNormalizeAll_ScoreScenario(t *testing.T) {
	// Three mcq questions answered [correct, incorrect, correct] with
	// supplied flags.
	questions := []quiz.Question{
		{ID: "a", Type: quiz.TypeMCQ, ReferenceAnswer: "1"},
		{ID: "b", Type: quiz.TypeMCQ, ReferenceAnswer: "1"},
		{ID: "c", Type: quiz.TypeMCQ, ReferenceAnswer: "1"},
	}
	raws := map[string]quiz.RawAnswer{
		"a": {Selected: "1", Correct: boolPtr(true)},
		"b": {Selected: "2", Correct: boolPtr(false)},
		"c": {Selected: "1", Correct: boolPtr(true)},
	}

	graded := NormalizeAll(questions, raws, nil)
	if len(graded) != 3 {
		t.Fatalf("got %d graded answers, want 3", len(graded))
	}

	var result quiz.QuizResult
	result.QuestionResults = graded
	result.Recompute(0)

	if result.Score != 2 || result.MaxScore != 3 {
		t.Errorf("score = %d/%d, want 2/3", result.Score, result.MaxScore)
	}
	if result.Percentage != 67 {
		t.Errorf("percentage = %d, want 67", result.Percentage)
	}
}
