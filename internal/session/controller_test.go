package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/codegrade"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/reconcile"
	"github.com/abhisek/quizdeck/internal/storage"
	"github.com/abhisek/quizdeck/internal/submission"
)

func init() {
	warnf = func(string, ...any) {}
}

func testDefinition() quiz.Definition {
	return quiz.Definition{
		ID:       "quiz-1",
		Slug:     "go-basics",
		Title:    "Go Basics",
		QuizType: "lesson",
		Questions: []quiz.Question{
			{
				ID:   "q1",
				Type: quiz.TypeMCQ,
				Options: []quiz.Option{
					{ID: "a", Text: "Paris"},
					{ID: "b", Text: "Rome"},
				},
				ReferenceAnswer: "Paris",
			},
			{ID: "q2", Type: quiz.TypeBlanks, ReferenceAnswer: "goroutine"},
			{ID: "q3", Type: quiz.TypeFlashcard},
		},
	}
}

func testStore() *storage.Store {
	return storage.New(storage.DefaultConfig(), storage.NewMemoryBackend())
}

func testController(store *storage.Store, sub submission.Submitter, grader codegrade.Grader, auth AuthGate) *Controller {
	cfg := DefaultConfig()
	cfg.PersistDebounce = 0 // persist synchronously in tests
	return New(testDefinition(), store, sub, grader, auth, cfg)
}

func answerAll(t *testing.T, c *Controller) {
	t.Helper()
	ctx := context.Background()
	if err := c.Answer(ctx, "q1", quiz.SelectedAnswer("a")); err != nil {
		t.Fatalf("answer q1: %v", err)
	}
	c.Next()
	if err := c.Answer(ctx, "q2", quiz.TextAnswer("goroutine")); err != nil {
		t.Fatalf("answer q2: %v", err)
	}
	c.Next()
	if err := c.Answer(ctx, "q3", quiz.SelfReportAnswer("incorrect")); err != nil {
		t.Fatalf("answer q3: %v", err)
	}
}

func TestController_CompleteHappyPath(t *testing.T) {
	ctx := context.Background()
	store := testStore()
	sub := submission.NewMockSubmitter()
	c := testController(store, sub, nil, &StaticAuthGate{Authed: true})

	require.NoError(t, c.Start(ctx))
	require.Equal(t, InProgress, c.Phase())

	answerAll(t, c)

	require.NoError(t, c.Complete(ctx))
	c.Await()

	require.Equal(t, Completed, c.Phase())
	require.Empty(t, c.Warning())
	require.Equal(t, 1, sub.CallCount())

	res := c.Result(ctx)
	require.NotNil(t, res)
	require.Equal(t, 2, res.Score)
	require.Equal(t, 3, res.MaxScore)
	require.Equal(t, 67, res.Percentage)
	require.False(t, res.CompletedAt.IsZero())
}

func TestController_SubmissionFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	store := testStore()
	sub := submission.NewMockSubmitter(
		submission.MockResponse{Err: &submission.ErrServerUnavailable{StatusCode: 502}},
	)
	c := testController(store, sub, nil, &StaticAuthGate{Authed: true})

	if err := c.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	answerAll(t, c)
	if err := c.Complete(ctx); err != nil {
		t.Fatalf("complete: %v", err)
	}
	c.Await()

	if c.Phase() != Completed {
		t.Fatalf("phase = %s, want completed", c.Phase())
	}
	if c.Warning() == "" {
		t.Fatal("expected a warning after failed submission")
	}
	res := c.Result(ctx)
	if res == nil {
		t.Fatal("result must survive a failed submission")
	}
	if res.Score != 2 {
		t.Fatalf("score = %d, want 2", res.Score)
	}
}

func TestController_RetrySubmit(t *testing.T) {
	ctx := context.Background()
	store := testStore()
	sub := submission.NewMockSubmitter(
		submission.MockResponse{Err: &submission.ErrServerUnavailable{StatusCode: 503}},
		submission.MockResponse{Outcome: &submission.Outcome{Success: true}},
	)
	c := testController(store, sub, nil, &StaticAuthGate{Authed: true})

	if err := c.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	answerAll(t, c)
	if err := c.Complete(ctx); err != nil {
		t.Fatalf("complete: %v", err)
	}
	c.Await()

	if c.Warning() == "" {
		t.Fatal("expected warning before retry")
	}
	if err := c.RetrySubmit(ctx); err != nil {
		t.Fatalf("retry: %v", err)
	}
	c.Await()

	if c.Warning() != "" {
		t.Fatalf("warning = %q, want cleared", c.Warning())
	}
	if sub.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", sub.CallCount())
	}
}

func TestController_RetrySubmitWithoutResult(t *testing.T) {
	c := testController(testStore(), submission.NewMockSubmitter(), nil, &StaticAuthGate{Authed: true})
	if err := c.RetrySubmit(context.Background()); err == nil {
		t.Fatal("expected error with no completed result")
	}
}

func TestController_NavigationBounds(t *testing.T) {
	ctx := context.Background()
	c := testController(testStore(), submission.NewMockSubmitter(), nil, &StaticAuthGate{Authed: true})
	if err := c.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	c.Previous() // at first question, no-op
	if c.CurrentIndex() != 0 {
		t.Fatalf("index = %d, want 0", c.CurrentIndex())
	}
	c.Next()
	c.Next()
	c.Next() // past last, no-op
	if c.CurrentIndex() != 2 {
		t.Fatalf("index = %d, want 2", c.CurrentIndex())
	}
	q := c.CurrentQuestion()
	if q == nil || q.ID != "q3" {
		t.Fatalf("current question = %+v, want q3", q)
	}
}

func TestController_WrongPhaseCalls(t *testing.T) {
	ctx := context.Background()
	c := testController(testStore(), submission.NewMockSubmitter(), nil, &StaticAuthGate{Authed: true})

	if err := c.Answer(ctx, "q1", quiz.SelectedAnswer("a")); err == nil {
		t.Fatal("answer before start must fail")
	}
	if err := c.Complete(ctx); err == nil {
		t.Fatal("complete before start must fail")
	}
	if err := c.Retake(ctx); err == nil {
		t.Fatal("retake before completion must fail")
	}
	if err := c.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := c.Start(ctx); err == nil {
		t.Fatal("double start must fail")
	}
}

func TestController_ResumeFromProgress(t *testing.T) {
	ctx := context.Background()
	store := testStore()
	sub := submission.NewMockSubmitter()

	first := testController(store, sub, nil, &StaticAuthGate{Authed: true})
	if err := first.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := first.Answer(ctx, "q1", quiz.SelectedAnswer("a")); err != nil {
		t.Fatalf("answer: %v", err)
	}
	first.Next()
	first.FlushProgress(ctx)
	attemptID := first.AttemptID()

	// Reload: a fresh controller over the same store resumes the attempt.
	second := testController(store, sub, nil, &StaticAuthGate{Authed: true})
	if err := second.Start(ctx); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if second.AttemptID() != attemptID {
		t.Fatalf("attempt id = %q, want %q", second.AttemptID(), attemptID)
	}
	if second.CurrentIndex() != 1 {
		t.Fatalf("resumed index = %d, want 1", second.CurrentIndex())
	}

	answerAll(t, second)
	if err := second.Complete(ctx); err != nil {
		t.Fatalf("complete: %v", err)
	}
	second.Await()
	res := second.Result(ctx)
	if res == nil || res.Score != 2 {
		t.Fatalf("resumed result = %+v, want score 2", res)
	}
}

func TestController_RetakeResetsEverything(t *testing.T) {
	ctx := context.Background()
	store := testStore()
	c := testController(store, submission.NewMockSubmitter(), nil, &StaticAuthGate{Authed: true})

	if err := c.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	answerAll(t, c)
	if err := c.Complete(ctx); err != nil {
		t.Fatalf("complete: %v", err)
	}
	c.Await()

	if err := c.Retake(ctx); err != nil {
		t.Fatalf("retake: %v", err)
	}
	if c.Phase() != NotStarted {
		t.Fatalf("phase = %s, want not_started", c.Phase())
	}
	if c.AttemptID() != "" {
		t.Fatal("attempt must be discarded on retake")
	}

	def := testDefinition()
	if got := store.Get(ctx, ProgressKey(def)); got != nil {
		t.Fatal("progress entry must be cleared on retake")
	}
	if got := store.Get(ctx, reconcile.TempResultKey(def)); got != nil {
		t.Fatal("temp result must be cleared on retake")
	}

	// A fresh attempt starts clean.
	if err := c.Start(ctx); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if c.CurrentIndex() != 0 {
		t.Fatalf("index = %d, want 0", c.CurrentIndex())
	}
	if c.Result(ctx) != nil {
		t.Fatal("no result should survive a retake")
	}
}

func TestController_UnauthenticatedStashAndClaim(t *testing.T) {
	ctx := context.Background()
	store := testStore()
	sub := submission.NewMockSubmitter()
	gate := &StaticAuthGate{Authed: false}
	c := testController(store, sub, nil, gate)

	if err := c.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	answerAll(t, c)
	if err := c.Complete(ctx); err != nil {
		t.Fatalf("complete: %v", err)
	}
	c.Await()

	if c.Phase() != Completed {
		t.Fatalf("phase = %s, want completed", c.Phase())
	}
	if sub.CallCount() != 0 {
		t.Fatal("must not submit while unauthenticated")
	}
	if got := gate.Redirects(); len(got) != 1 {
		t.Fatalf("redirects = %v, want one", got)
	}

	def := testDefinition()
	if store.Get(ctx, reconcile.PendingResultKey(def)) == nil {
		t.Fatal("pending result must be stashed")
	}
	if store.Get(ctx, storage.AuthFlowKey()) == nil {
		t.Fatal("auth flow marker must be set")
	}

	// Back from sign-in.
	gate.Authed = true
	res := c.ClaimPendingResult(ctx)
	if res == nil || res.Score != 2 {
		t.Fatalf("claimed = %+v, want score 2", res)
	}
	if store.Get(ctx, reconcile.PendingResultKey(def)) != nil {
		t.Fatal("pending result must be cleared after claim")
	}
	if store.Get(ctx, storage.AuthFlowKey()) != nil {
		t.Fatal("auth flow marker must be cleared after claim")
	}
	if store.Get(ctx, reconcile.TempResultKey(def)) == nil {
		t.Fatal("claimed result must land under the temp key")
	}
}

func TestController_CodeGrading(t *testing.T) {
	ctx := context.Background()
	def := quiz.Definition{
		ID:       "quiz-2",
		Slug:     "code-kata",
		QuizType: "exercise",
		Questions: []quiz.Question{
			{ID: "c1", Type: quiz.TypeCode, Prompt: "Reverse a string", ReferenceAnswer: "s[::-1]"},
			{ID: "c2", Type: quiz.TypeCode, Prompt: "Sum a list", ReferenceAnswer: "sum(xs)"},
		},
	}
	grader := codegrade.NewMockGrader(
		codegrade.MockResult{Verdict: &codegrade.Verdict{Correct: true}},
		codegrade.MockResult{Err: errors.New("provider down")},
	)
	cfg := DefaultConfig()
	cfg.PersistDebounce = 0
	c := New(def, testStore(), submission.NewMockSubmitter(), grader, &StaticAuthGate{Authed: true}, cfg)

	if err := c.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := c.Answer(ctx, "c1", quiz.TextAnswer("def rev(s): return s[::-1]")); err != nil {
		t.Fatalf("answer c1: %v", err)
	}
	c.Next()
	if err := c.Answer(ctx, "c2", quiz.TextAnswer("def total(xs): return sum(xs)")); err != nil {
		t.Fatalf("answer c2: %v", err)
	}
	if err := c.Complete(ctx); err != nil {
		t.Fatalf("complete: %v", err)
	}
	c.Await()

	if grader.CallCount() != 2 {
		t.Fatalf("grader calls = %d, want 2", grader.CallCount())
	}
	res := c.Result(ctx)
	if res == nil {
		t.Fatal("expected a result")
	}
	// c1 graded correct; c2's grader failure scores as incorrect.
	if res.Score != 1 || res.MaxScore != 2 {
		t.Fatalf("score = %d/%d, want 1/2", res.Score, res.MaxScore)
	}
}
