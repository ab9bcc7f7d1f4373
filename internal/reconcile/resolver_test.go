package reconcile

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/storage"
)

func init() {
	warnf = func(string, ...any) {}
}

func testDefinition() quiz.Definition {
	return quiz.Definition{
		ID:       "quiz-1",
		Slug:     "go-basics",
		Title:    "Go Basics",
		QuizType: "practice",
		Questions: []quiz.Question{
			{ID: "q1", Type: quiz.TypeMCQ, ReferenceAnswer: "a", Options: []quiz.Option{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}}},
			{ID: "q2", Type: quiz.TypeBlanks, ReferenceAnswer: "object"},
			{ID: "q3", Type: quiz.TypeMCQ, ReferenceAnswer: "b", Options: []quiz.Option{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}}},
		},
	}
}

func consistentResult(slug string) *quiz.QuizResult {
	return &quiz.QuizResult{
		QuizID:      "quiz-1",
		Slug:        slug,
		Title:       "Go Basics",
		QuizType:    "practice",
		Score:       2,
		MaxScore:    3,
		Percentage:  67,
		CompletedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		QuestionResults: []quiz.GradedAnswer{
			{QuestionID: "q1", IsCorrect: true, Type: quiz.TypeMCQ},
			{QuestionID: "q2", IsCorrect: false, Type: quiz.TypeBlanks},
			{QuestionID: "q3", IsCorrect: true, Type: quiz.TypeMCQ},
		},
	}
}

func TestResolve_MemoryWins(t *testing.T) {
	r := NewResolver(nil)
	def := testDefinition()

	mem := consistentResult("go-basics")
	gen := consistentResult("go-basics")
	gen.CompletedAt = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	got := r.Resolve(context.Background(), def, Candidates{Memory: mem, Generated: gen})
	if got == nil {
		t.Fatal("expected a result")
	}
	if !got.CompletedAt.Equal(mem.CompletedAt) {
		t.Error("memory candidate should outrank generated")
	}
}

func TestResolve_SessionSnapshotBeforeLocal(t *testing.T) {
	r := NewResolver(nil)
	def := testDefinition()

	sess := consistentResult("go-basics")
	sess.Title = "from session"
	local := consistentResult("go-basics")
	local.Title = "from local"

	sessRaw, _ := json.Marshal(sess)
	localRaw, _ := json.Marshal(local)

	got := r.Resolve(context.Background(), def, Candidates{Session: sessRaw, Local: localRaw})
	if got == nil || got.Title != "from session" {
		t.Fatalf("session snapshot should outrank local, got %+v", got)
	}
}

func TestResolve_SlugMismatchRejected(t *testing.T) {
	r := NewResolver(nil)
	def := testDefinition()

	other := consistentResult("different-quiz")
	raw, _ := json.Marshal(other)

	if got := r.Resolve(context.Background(), def, Candidates{Session: raw}); got != nil {
		t.Errorf("snapshot for another slug must be rejected, got %+v", got)
	}
}

func TestResolve_RepairsPartialSnapshot(t *testing.T) {
	r := NewResolver(nil)
	def := testDefinition()

	// Snapshot with questions + raw answers but no questionResults.
	partial := map[string]any{
		"quizId":   "quiz-1",
		"slug":     "go-basics",
		"quizType": "practice",
		"questions": []any{
			map[string]any{"id": "q1", "type": "mcq", "referenceAnswer": "a", "options": []any{"a", "b"}},
			map[string]any{"id": "q2", "type": "blanks", "referenceAnswer": "object"},
		},
		"answers": []any{
			map[string]any{"questionId": "q1", "selectedOptionId": "a"},
			map[string]any{"questionId": "q2", "userAnswer": "objetc"},
		},
	}
	raw, _ := json.Marshal(partial)

	got := r.Resolve(context.Background(), def, Candidates{Local: raw})
	if got == nil {
		t.Fatal("expected a repaired result")
	}
	if !got.Repaired {
		t.Error("repaired result should carry the Repaired flag")
	}
	// Two graded answers repaired, but the quiz declares three questions:
	// partial results are scored against the declared count.
	if got.Score != 2 || got.MaxScore != 3 {
		t.Errorf("repaired score = %d/%d, want 2/3", got.Score, got.MaxScore)
	}
	if got.Title != "Go Basics" {
		t.Errorf("identity fields should be filled from the definition, got %q", got.Title)
	}
}

func TestResolve_InconsistentScoreRecomputed(t *testing.T) {
	r := NewResolver(nil)
	def := testDefinition()

	lying := consistentResult("go-basics")
	lying.Score = 3
	lying.Percentage = 100
	raw, _ := json.Marshal(lying)

	got := r.Resolve(context.Background(), def, Candidates{Local: raw})
	if got == nil {
		t.Fatal("expected a result")
	}
	if got.Score != 2 || got.Percentage != 67 {
		t.Errorf("stored score must be recomputed, got %d (%d%%)", got.Score, got.Percentage)
	}
}

func TestResolve_LiveSynthesis(t *testing.T) {
	r := NewResolver(nil)
	def := testDefinition()

	live := &LiveState{
		Definition: def,
		Answers: map[string]quiz.RawAnswer{
			"q1": quiz.SelectedAnswer("a"),
			"q2": quiz.TextAnswer("object"),
			"q3": quiz.SelectedAnswer("a"),
		},
		Elapsed:     map[string]int{"q1": 5, "q2": 9, "q3": 4},
		CompletedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}

	got := r.Resolve(context.Background(), def, Candidates{Live: live})
	if got == nil {
		t.Fatal("expected a synthesized result")
	}
	if got.Score != 2 || got.MaxScore != 3 || got.Percentage != 67 {
		t.Errorf("synthesized %d/%d (%d%%), want 2/3 (67%%)", got.Score, got.MaxScore, got.Percentage)
	}
	if got.QuestionResults[0].TimeSpentSeconds != 5 {
		t.Error("elapsed time should flow into graded answers")
	}
}

func TestResolve_NothingUsableYieldsNil(t *testing.T) {
	r := NewResolver(nil)
	def := testDefinition()

	candidates := Candidates{
		Session: json.RawMessage(`{corrupt`),
		Local:   json.RawMessage(`{"noSlug": true}`),
	}
	if got := r.Resolve(context.Background(), def, candidates); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	r := NewResolver(nil)
	def := testDefinition()

	raw, _ := json.Marshal(consistentResult("go-basics"))
	c := Candidates{Local: raw}

	first := r.Resolve(context.Background(), def, c)
	second := r.Resolve(context.Background(), def, c)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("resolve is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestResolve_LiveSynthesisIdempotent(t *testing.T) {
	r := NewResolver(nil)
	def := testDefinition()

	// No completion timestamp: the resolver stamps the candidate once and
	// repeated resolves must return the same result bit for bit.
	c := Candidates{Live: &LiveState{
		Definition: def,
		Answers:    map[string]quiz.RawAnswer{"q1": quiz.SelectedAnswer("a")},
		Elapsed:    map[string]int{"q1": 3},
	}}

	first := r.Resolve(context.Background(), def, c)
	second := r.Resolve(context.Background(), def, c)
	if first == nil || second == nil {
		t.Fatal("expected synthesized results")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("live synthesis is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if first.CompletedAt.IsZero() {
		t.Error("synthesized result should carry a completion timestamp")
	}
}

func TestResolveStored_FindsSnapshotInStore(t *testing.T) {
	store := storage.New(storage.DefaultConfig(), storage.NewMemoryBackend())
	r := NewResolver(store)
	def := testDefinition()

	stored := consistentResult("go-basics")
	stored.Title = "from storage"
	store.Put(context.Background(), TempResultKey(def), stored)

	got := r.ResolveStored(context.Background(), def, Candidates{})
	if got == nil || got.Title != "from storage" {
		t.Fatalf("stored snapshot should be resolved, got %+v", got)
	}
}

func TestResolve_WriteBack(t *testing.T) {
	store := storage.New(storage.DefaultConfig(), storage.NewMemoryBackend())
	r := NewResolver(store)
	def := testDefinition()

	mem := consistentResult("go-basics")
	if got := r.Resolve(context.Background(), def, Candidates{Memory: mem}); got == nil {
		t.Fatal("expected a result")
	}

	var cached quiz.QuizResult
	if !store.GetJSON(context.Background(), TempResultKey(def), &cached) {
		t.Fatal("chosen result should be written back to storage")
	}
	if cached.Score != 2 {
		t.Errorf("cached score = %d, want 2", cached.Score)
	}
}

func TestResolve_DoesNotMutateCandidates(t *testing.T) {
	r := NewResolver(nil)
	def := testDefinition()

	mem := consistentResult("go-basics")
	mem.Score = 99 // inconsistent on purpose
	before := mem.Score

	got := r.Resolve(context.Background(), def, Candidates{Memory: mem})
	if got == nil {
		t.Fatal("expected a result")
	}
	if got.Score != 2 {
		t.Errorf("returned result should be recomputed, got %d", got.Score)
	}
	if mem.Score != before {
		t.Error("caller's candidate must not be mutated")
	}
}
