// Package reconcile selects one authoritative quiz result from multiple,
// possibly conflicting sources: the in-memory canonical copy, a result
// generated earlier this session, stored snapshots, or a fresh synthesis
// from live answer state. Precedence is fixed; partial snapshots are
// repaired before being rejected.
package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/quizdeck/internal/answers"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/storage"
)

// warnf reports non-fatal reconciliation problems. Overridable in tests.
var warnf = func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// LiveState is the active attempt's question/answer state, used both for
// candidate 4 (fresh synthesis after a reload lost the cached result) and
// as the source of truth at completion time.
type LiveState struct {
	Definition quiz.Definition
	Answers    map[string]quiz.RawAnswer
	Elapsed    map[string]int
	// CompletedAt stamps the synthesized result. Zero means "now": the
	// resolver fills it in on first synthesis and leaves it filled, so
	// resolving the same live state twice stays deterministic.
	CompletedAt time.Time
}

// Candidates are the possible sources of a canonical result, in
// precedence order. Any field may be nil/empty.
type Candidates struct {
	// Memory is the canonical result already computed this session.
	Memory *quiz.QuizResult

	// Generated is a result computed earlier this session from live
	// answer state.
	Generated *quiz.QuizResult

	// Session and Local are stored snapshots from the session and
	// durable tiers, undecoded.
	Session json.RawMessage
	Local   json.RawMessage

	// Live is the current question/answer state for fresh synthesis.
	Live *LiveState
}

// Resolver picks and repairs the canonical result. The zero value is not
// usable; construct with NewResolver.
type Resolver struct {
	store *storage.Store
	now   func() time.Time
}

// NewResolver creates a resolver that writes chosen results back into
// store. A nil store disables write-back.
func NewResolver(store *storage.Store) *Resolver {
	return &Resolver{store: store, now: time.Now}
}

// Resolve returns the canonical result for the quiz identified by want,
// or nil when no candidate yields usable data. First usable candidate in
// precedence order wins: memory, generated, session snapshot, local
// snapshot, live synthesis. Stored snapshots must match want's slug and
// are repaired from questions+answers when their questionResults are
// missing. Every accepted result is checked against the scoring
// invariants and recomputed when inconsistent, never trusted blindly.
//
// Side effect: the chosen result is written back to the temp-result key
// so later calls hit storage instead of re-deriving. Deterministic for
// unchanged candidates.
func (r *Resolver) Resolve(ctx context.Context, want quiz.Definition, c Candidates) *quiz.QuizResult {
	if res := r.accept(c.Memory, want); res != nil {
		return r.writeBack(ctx, want, res)
	}
	if res := r.accept(c.Generated, want); res != nil {
		return r.writeBack(ctx, want, res)
	}
	if res := r.acceptSnapshot(c.Session, want); res != nil {
		return r.writeBack(ctx, want, res)
	}
	if res := r.acceptSnapshot(c.Local, want); res != nil {
		return r.writeBack(ctx, want, res)
	}
	if res := r.synthesize(c.Live, want); res != nil {
		return r.writeBack(ctx, want, res)
	}
	return nil
}

// ResolveStored is Resolve with the stored snapshot candidates pulled from
// the resolver's own store, for callers that only hold live state.
func (r *Resolver) ResolveStored(ctx context.Context, want quiz.Definition, c Candidates) *quiz.QuizResult {
	if r.store != nil {
		k := TempResultKey(want)
		if c.Session == nil {
			c.Session = r.store.GetTier(ctx, storage.TierMemory, k)
		}
		if c.Local == nil {
			c.Local = r.store.GetTier(ctx, storage.TierSQLite, k)
		}
	}
	return r.Resolve(ctx, want, c)
}

// TempResultKey is the storage key a quiz's canonical result lives under.
func TempResultKey(d quiz.Definition) storage.Key {
	return storage.Key{Kind: storage.KindTempResult, EntityID: d.Slug, SubKind: d.QuizType}
}

// PendingResultKey is the storage key for a result stashed across an auth
// redirect.
func PendingResultKey(d quiz.Definition) storage.Key {
	return storage.Key{Kind: storage.KindPendingResult, EntityID: d.Slug, SubKind: d.QuizType}
}

// accept validates an already-decoded candidate. Returns a copy so the
// caller's candidate is never mutated by invariant repair.
func (r *Resolver) accept(res *quiz.QuizResult, want quiz.Definition) *quiz.QuizResult {
	if res == nil {
		return nil
	}
	if res.Slug != "" && want.Slug != "" && res.Slug != want.Slug {
		warnf("reconcile: candidate slug %q does not match %q", res.Slug, want.Slug)
		return nil
	}
	if len(res.QuestionResults) == 0 {
		return nil
	}

	out := *res
	out.QuestionResults = append([]quiz.GradedAnswer(nil), res.QuestionResults...)
	r.finalize(&out, want)
	return &out
}

// acceptSnapshot validates, decodes and if needed repairs a stored
// snapshot.
func (r *Resolver) acceptSnapshot(raw json.RawMessage, want quiz.Definition) *quiz.QuizResult {
	snap := decodeSnapshot(raw)
	if snap == nil {
		return nil
	}
	if want.Slug != "" && snap.Slug != want.Slug {
		return nil
	}

	if len(snap.QuestionResults) == 0 {
		if !snap.repair() {
			return nil
		}
		warnf("reconcile: repaired stored result for %s from partial data", snap.Slug)
	}

	res := snap.QuizResult
	r.finalize(&res, want)
	return &res
}

// synthesize builds a result directly from live question/answer state,
// the same normalize-and-score pass as initial completion.
func (r *Resolver) synthesize(live *LiveState, want quiz.Definition) *quiz.QuizResult {
	if live == nil || len(live.Definition.Questions) == 0 || len(live.Answers) == 0 {
		return nil
	}

	if live.CompletedAt.IsZero() {
		// Stamp the candidate itself, not just the result, so resolving
		// the same candidates again yields an identical result.
		live.CompletedAt = r.now()
	}

	res := &quiz.QuizResult{
		QuizID:          live.Definition.ID,
		Slug:            live.Definition.Slug,
		Title:           live.Definition.Title,
		QuizType:        live.Definition.QuizType,
		CompletedAt:     live.CompletedAt,
		QuestionResults: answers.NormalizeAll(live.Definition.Questions, live.Answers, live.Elapsed),
	}
	res.Recompute(len(live.Definition.Questions))

	if want.Slug != "" && res.Slug == "" {
		res.Slug = want.Slug
	}
	return res
}

// finalize enforces the scoring invariants and fills identity fields a
// sparse snapshot may have dropped.
func (r *Resolver) finalize(res *quiz.QuizResult, want quiz.Definition) {
	if !res.Consistent() {
		warnf("reconcile: recomputing inconsistent result for %s", res.Slug)
		res.Recompute(len(want.Questions))
	}
	if res.QuizID == "" {
		res.QuizID = want.ID
	}
	if res.Slug == "" {
		res.Slug = want.Slug
	}
	if res.Title == "" {
		res.Title = want.Title
	}
	if res.QuizType == "" {
		res.QuizType = want.QuizType
	}
}

// writeBack caches the chosen result in storage so subsequent resolves
// find it as a snapshot immediately.
func (r *Resolver) writeBack(ctx context.Context, want quiz.Definition, res *quiz.QuizResult) *quiz.QuizResult {
	if r.store != nil && res != nil {
		r.store.Put(ctx, TempResultKey(want), res)
	}
	return res
}
