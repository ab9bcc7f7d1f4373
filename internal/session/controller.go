package session

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizdeck/internal/codegrade"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/reconcile"
	"github.com/abhisek/quizdeck/internal/storage"
	"github.com/abhisek/quizdeck/internal/submission"
)

// warnf reports non-fatal session problems. Overridable in tests.
var warnf = func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// Phase is the controller's lifecycle state.
type Phase int

const (
	NotStarted Phase = iota
	InProgress
	Submitting
	Completed
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Submitting:
		return "submitting"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// attempt is the per-attempt context. Created at Start, discarded at
// Retake; nothing about an attempt outlives it except what was persisted.
type attempt struct {
	id        string
	startedAt time.Time
	index     int
	answers   map[string]quiz.RawAnswer
	elapsed   map[string]int
	// shownAt is when the current question was presented, for elapsed
	// accounting.
	shownAt time.Time
	result  *quiz.QuizResult
}

// Controller drives one quiz attempt through
// not_started → in_progress → submitting → completed, with retake looping
// back to not_started. It owns the raw answers for the active attempt and
// is the only component that talks to all the collaborators.
//
// All methods are safe for concurrent use, but the expected caller is a
// single UI event loop; the mutex exists for the async completion and
// retry goroutines.
type Controller struct {
	cfg       Config
	def       quiz.Definition
	store     *storage.Store
	resolver  *reconcile.Resolver
	submitter submission.Submitter
	grader    codegrade.Grader
	auth      AuthGate

	mu      sync.Mutex
	phase   Phase
	att     *attempt
	warning string
	timer   *time.Timer
	wg      sync.WaitGroup
	now     func() time.Time
}

// New creates a controller for one quiz. grader may be nil, in which case
// code submissions are not externally graded and score as incorrect.
func New(def quiz.Definition, store *storage.Store, submitter submission.Submitter, grader codegrade.Grader, auth AuthGate, cfg Config) *Controller {
	return &Controller{
		cfg:       cfg,
		def:       def,
		store:     store,
		resolver:  reconcile.NewResolver(store),
		submitter: submitter,
		grader:    grader,
		auth:      auth,
		now:       time.Now,
	}
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Warning returns the latest non-fatal problem, or "" when there is none.
func (c *Controller) Warning() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.warning
}

// AttemptID returns the active attempt's identifier, or "" outside an
// attempt.
func (c *Controller) AttemptID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.att == nil {
		return ""
	}
	return c.att.id
}

// CurrentIndex returns the index of the question being shown.
func (c *Controller) CurrentIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.att == nil {
		return 0
	}
	return c.att.index
}

// CurrentQuestion returns the question being shown, or nil outside an
// attempt.
func (c *Controller) CurrentQuestion() *quiz.Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.att == nil || c.att.index >= len(c.def.Questions) {
		return nil
	}
	return &c.def.Questions[c.att.index]
}

// Start begins an attempt, resuming saved progress for this quiz if a
// snapshot exists.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != NotStarted {
		return fmt.Errorf("cannot start from phase %s", c.phase)
	}

	now := c.now()
	att := &attempt{
		id:        uuid.NewString(),
		startedAt: now,
		answers:   make(map[string]quiz.RawAnswer),
		elapsed:   make(map[string]int),
		shownAt:   now,
	}

	var snap progressSnapshot
	if c.store != nil && c.store.GetJSON(ctx, ProgressKey(c.def), &snap) && len(snap.Answers) > 0 {
		if snap.AttemptID != "" {
			att.id = snap.AttemptID
		}
		att.answers = snap.Answers
		if snap.Elapsed != nil {
			att.elapsed = snap.Elapsed
		}
		att.index = clamp(snap.Index, 0, len(c.def.Questions)-1)
		if !snap.StartedAt.IsZero() {
			att.startedAt = snap.StartedAt
		}
	}

	c.att = att
	c.warning = ""
	c.phase = InProgress
	return nil
}

// Answer records the raw answer for a question and schedules a debounced
// progress write. The last write always wins.
func (c *Controller) Answer(ctx context.Context, questionID string, raw quiz.RawAnswer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != InProgress {
		return fmt.Errorf("cannot answer in phase %s", c.phase)
	}
	if c.def.QuestionByID(questionID) == nil {
		return fmt.Errorf("unknown question %q", questionID)
	}

	now := c.now()
	c.att.answers[questionID] = raw
	c.att.elapsed[questionID] += int(now.Sub(c.att.shownAt).Seconds())
	c.att.shownAt = now

	if c.cfg.PersistDebounce <= 0 {
		c.persistLocked(ctx)
		return nil
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.cfg.PersistDebounce, func() {
		c.FlushProgress(context.Background())
	})
	return nil
}

// Next advances to the following question. No-op at the last question or
// outside in_progress.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != InProgress {
		return
	}
	if c.att.index < len(c.def.Questions)-1 {
		c.att.index++
		c.att.shownAt = c.now()
	}
}

// Previous moves back one question. No-op at the first question or
// outside in_progress.
func (c *Controller) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != InProgress {
		return
	}
	if c.att.index > 0 {
		c.att.index--
		c.att.shownAt = c.now()
	}
}

// FlushProgress writes the progress snapshot immediately, cancelling any
// pending debounced write.
func (c *Controller) FlushProgress(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.att == nil {
		return
	}
	c.persistLocked(ctx)
}

func (c *Controller) persistLocked(ctx context.Context) {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.store == nil {
		return
	}
	c.store.Put(ctx, ProgressKey(c.def), progressSnapshot{
		AttemptID: c.att.id,
		Index:     c.att.index,
		Answers:   c.att.answers,
		Elapsed:   c.att.elapsed,
		StartedAt: c.att.startedAt,
	})
}

// Complete finishes the attempt: grades code answers, normalizes and
// scores everything, and hands the result to the submission collaborator.
// Grading and submission run off the calling goroutine; the controller
// reports submitting until they settle, then completed whether or not the
// server accepted. A failed submission becomes a warning, never a lost
// result. Submission happens at most once per Complete call; retries are
// explicit via RetrySubmit.
func (c *Controller) Complete(ctx context.Context) error {
	c.mu.Lock()

	if c.phase != InProgress {
		c.mu.Unlock()
		return fmt.Errorf("cannot complete from phase %s", c.phase)
	}

	c.persistLocked(ctx)
	c.phase = Submitting

	raws := make(map[string]quiz.RawAnswer, len(c.att.answers))
	for k, v := range c.att.answers {
		raws[k] = v
	}
	elapsed := make(map[string]int, len(c.att.elapsed))
	for k, v := range c.att.elapsed {
		elapsed[k] = v
	}
	completedAt := c.now()
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.finishAttempt(ctx, raws, elapsed, completedAt)
	}()
	return nil
}

func (c *Controller) finishAttempt(ctx context.Context, raws map[string]quiz.RawAnswer, elapsed map[string]int, completedAt time.Time) {
	c.gradeCode(ctx, raws)

	res := c.resolver.Resolve(ctx, c.def, reconcile.Candidates{
		Live: &reconcile.LiveState{
			Definition:  c.def,
			Answers:     raws,
			Elapsed:     elapsed,
			CompletedAt: completedAt,
		},
	})

	c.mu.Lock()
	if c.att != nil {
		c.att.result = res
	}
	c.mu.Unlock()

	if res == nil {
		c.finishWith("no result could be computed")
		return
	}

	if !c.auth.IsAuthenticated() {
		c.stashPending(ctx, res)
		c.auth.RequireAuth(c.cfg.ReturnPath)
		c.finishWith("")
		return
	}

	c.submit(ctx, res)
}

// gradeCode asks the external grader for a verdict on each code answer
// that doesn't already carry one. Grader failures leave the answer
// unverdicted, which scores as incorrect.
func (c *Controller) gradeCode(ctx context.Context, raws map[string]quiz.RawAnswer) {
	if c.grader == nil {
		return
	}
	for i := range c.def.Questions {
		q := &c.def.Questions[i]
		if q.Type != quiz.TypeCode {
			continue
		}
		raw, ok := raws[q.ID]
		if !ok || raw.Text == "" || raw.Correct != nil {
			continue
		}
		v, err := c.grader.Grade(ctx, codegrade.Submission{
			QuestionID: q.ID,
			Prompt:     q.Prompt,
			Reference:  q.ReferenceAnswer,
			Code:       raw.Text,
		})
		if err != nil {
			warnf("session: grading %s failed: %v", q.ID, err)
			continue
		}
		correct := v.Correct
		raw.Correct = &correct
		raws[q.ID] = raw
	}
}

// stashPending holds the result across a sign-in redirect: the result
// itself under the pending key, plus the global marker that stops cleanup
// from discarding it mid-flow.
func (c *Controller) stashPending(ctx context.Context, res *quiz.QuizResult) {
	if c.store == nil {
		return
	}
	c.store.Put(ctx, reconcile.PendingResultKey(c.def), res)
	c.store.Put(ctx, storage.AuthFlowKey(), authFlowMarker{
		Slug:      c.def.Slug,
		QuizType:  c.def.QuizType,
		StartedAt: c.now(),
	})
}

func (c *Controller) submit(ctx context.Context, res *quiz.QuizResult) {
	_, err := c.submitter.Submit(ctx, submission.PayloadFor(res))
	if err != nil {
		warnf("session: submission failed: %v", err)
		c.finishWith(fmt.Sprintf("submission failed: %v", err))
		return
	}
	c.finishWith("")
}

func (c *Controller) finishWith(warning string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warning = warning
	c.phase = Completed
}

// Await blocks until in-flight completion or retry work settles. The UI
// loop polls Phase instead; Await is for callers that need the outcome
// synchronously.
func (c *Controller) Await() {
	c.wg.Wait()
}

// RetrySubmit re-attempts submission of the completed result. Explicit
// only; the controller never retries on its own.
func (c *Controller) RetrySubmit(ctx context.Context) error {
	c.mu.Lock()
	if c.phase != Completed || c.att == nil || c.att.result == nil {
		c.mu.Unlock()
		return fmt.Errorf("no completed result to submit")
	}
	res := c.att.result
	c.warning = ""
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.submit(ctx, res)
	}()
	return nil
}

// Result returns the canonical result for this quiz, reconciling the
// attempt's in-memory copy with stored snapshots. Nil means nothing
// usable exists anywhere.
func (c *Controller) Result(ctx context.Context) *quiz.QuizResult {
	c.mu.Lock()
	var memory *quiz.QuizResult
	var live *reconcile.LiveState
	if c.att != nil {
		memory = c.att.result
		if memory == nil && len(c.att.answers) > 0 {
			live = &reconcile.LiveState{
				Definition: c.def,
				Answers:    c.att.answers,
				Elapsed:    c.att.elapsed,
			}
		}
	}
	c.mu.Unlock()

	res := c.resolver.ResolveStored(ctx, c.def, reconcile.Candidates{
		Memory: memory,
		Live:   live,
	})

	c.mu.Lock()
	if c.att != nil && res != nil {
		c.att.result = res
	}
	c.mu.Unlock()
	return res
}

// ClaimPendingResult promotes a result stashed before a sign-in redirect
// to the regular temp-result key and clears the auth-flow marker. Returns
// the claimed result, or nil when nothing was pending.
func (c *Controller) ClaimPendingResult(ctx context.Context) *quiz.QuizResult {
	if c.store == nil {
		return nil
	}

	var res quiz.QuizResult
	if !c.store.GetJSON(ctx, reconcile.PendingResultKey(c.def), &res) {
		return nil
	}

	c.store.Put(ctx, reconcile.TempResultKey(c.def), &res)
	c.store.Remove(ctx, reconcile.PendingResultKey(c.def))
	c.store.Remove(ctx, storage.AuthFlowKey())

	c.mu.Lock()
	if c.att != nil && c.att.result == nil {
		c.att.result = &res
	}
	c.mu.Unlock()
	return &res
}

// Retake resets to not_started and clears this quiz's stored state so the
// next attempt starts clean. A pending result survives only while an auth
// redirect is in flight.
func (c *Controller) Retake(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != Completed {
		return fmt.Errorf("cannot retake from phase %s", c.phase)
	}

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	if c.store != nil {
		c.store.Remove(ctx, ProgressKey(c.def))
		c.store.Remove(ctx, reconcile.TempResultKey(c.def))

		var marker authFlowMarker
		if !c.store.GetJSON(ctx, storage.AuthFlowKey(), &marker) {
			c.store.Remove(ctx, reconcile.PendingResultKey(c.def))
		}
	}

	c.att = nil
	c.warning = ""
	c.phase = NotStarted
	return nil
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
