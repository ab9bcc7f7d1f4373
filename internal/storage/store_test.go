package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func init() {
	// Storage warnings are expected noise in these tests.
	warnf = func(string, ...any) {}
}

// failingBackend simulates a tier with quota exhaustion or disabled
// storage: every operation errors.
type failingBackend struct{}

func (failingBackend) Name() string                                  { return "failing" }
func (failingBackend) Put(context.Context, Key, Entry) error         { return errors.New("quota exceeded") }
func (failingBackend) Get(context.Context, Key) (Entry, bool, error) { return Entry{}, false, errors.New("disabled") }
func (failingBackend) Remove(context.Context, Key) error             { return errors.New("disabled") }
func (failingBackend) RemoveKey(context.Context, string) error       { return errors.New("disabled") }
func (failingBackend) ListKind(context.Context, string) ([]KeyedEntry, error) {
	return nil, errors.New("disabled")
}

func progressKey(id string) Key {
	return Key{Kind: KindProgress, EntityID: id, SubKind: "practice"}
}

func TestKey_String(t *testing.T) {
	k := Key{Kind: KindProgress, EntityID: "quiz-9", SubKind: "practice"}
	if got := k.String(); got != "quiz_progress_quiz-9_practice" {
		t.Errorf("Key.String() = %q", got)
	}
	if got := AuthFlowKey().String(); got != "auth_flow_global" {
		t.Errorf("AuthFlowKey().String() = %q", got)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s := New(DefaultConfig(), NewMemoryBackend(), NewMemoryBackend())
	ctx := context.Background()

	type progress struct {
		Current int            `json:"current"`
		Answers map[string]int `json:"answers"`
	}
	in := progress{Current: 2, Answers: map[string]int{"q1": 1}}
	s.Put(ctx, progressKey("quiz-1"), in)

	var out progress
	if !s.GetJSON(ctx, progressKey("quiz-1"), &out) {
		t.Fatal("expected a stored payload")
	}
	if out.Current != 2 || out.Answers["q1"] != 1 {
		t.Errorf("round trip mangled payload: %+v", out)
	}
}

func TestStore_ReadsFallBackToSecondTier(t *testing.T) {
	durable := NewMemoryBackend()
	session := NewMemoryBackend()
	s := New(DefaultConfig(), durable, session)
	ctx := context.Background()

	s.Put(ctx, progressKey("quiz-2"), "hello")

	// Wipe the durable tier; the session tier still answers.
	if err := durable.Remove(ctx, progressKey("quiz-2")); err != nil {
		t.Fatal(err)
	}
	var out string
	if !s.GetJSON(ctx, progressKey("quiz-2"), &out) || out != "hello" {
		t.Errorf("session tier fallback failed, got %q", out)
	}
}

func TestStore_OneFailingTierNeverPropagates(t *testing.T) {
	s := New(DefaultConfig(), failingBackend{}, NewMemoryBackend())
	ctx := context.Background()

	// Put must not panic or error out; the healthy tier still stores.
	s.Put(ctx, progressKey("quiz-3"), 42)

	var out int
	if !s.GetJSON(ctx, progressKey("quiz-3"), &out) || out != 42 {
		t.Errorf("healthy tier should still serve the payload, got %d", out)
	}

	s.Remove(ctx, progressKey("quiz-3"))
	if s.Get(ctx, progressKey("quiz-3")) != nil {
		t.Error("remove should clear the healthy tier")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	tier := NewMemoryBackend()
	s := New(DefaultConfig(), tier)
	ctx := context.Background()

	k := Key{Kind: KindTempResult, EntityID: "quiz-4", SubKind: "practice"}
	s.Put(ctx, k, "result")

	// 25 hours later a 24-hour temp result is treated as absent.
	s.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	if s.Get(ctx, k) != nil {
		t.Error("entry past its TTL should read as absent")
	}

	// Progress has no TTL: still visible arbitrarily late.
	s.now = time.Now
	s.Put(ctx, progressKey("quiz-4"), "progress")
	s.now = func() time.Time { return time.Now().Add(1000 * time.Hour) }
	if s.Get(ctx, progressKey("quiz-4")) == nil {
		t.Error("progress entries must not expire on read")
	}
}

func TestStore_CorruptPayloadReadsAsAbsent(t *testing.T) {
	tier := NewMemoryBackend()
	s := New(DefaultConfig(), tier)
	ctx := context.Background()

	k := progressKey("quiz-5")
	if err := tier.Put(ctx, k, Entry{Payload: []byte("{not json"), StoredAt: time.Now().UnixMilli()}); err != nil {
		t.Fatal(err)
	}

	if s.Get(ctx, k) != nil {
		t.Error("corrupt JSON should read as absent, not error")
	}
	var dst map[string]any
	if s.GetJSON(ctx, k, &dst) {
		t.Error("GetJSON should report absence for corrupt payloads")
	}
}

func TestStore_CleanupCapsKindAt100(t *testing.T) {
	tier := NewMemoryBackend()
	s := New(DefaultConfig(), tier)
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 150; i++ {
		// Distinct, strictly increasing write times.
		ts := base.Add(time.Duration(i) * time.Second)
		s.now = func() time.Time { return ts }
		s.Put(ctx, progressKey(fmt.Sprintf("quiz-%03d", i)), i)
	}
	s.now = func() time.Time { return base.Add(150 * time.Second) }

	s.Cleanup(ctx)

	left, err := tier.ListKind(ctx, KindProgress)
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != MaxEntriesPerKind {
		t.Fatalf("got %d live entries, want %d", len(left), MaxEntriesPerKind)
	}

	// Oldest 50 evicted first: quiz-000 gone, quiz-149 retained.
	if s.Get(ctx, progressKey("quiz-000")) != nil {
		t.Error("oldest entry should have been evicted")
	}
	if s.Get(ctx, progressKey("quiz-149")) == nil {
		t.Error("newest entry should survive")
	}
}

func TestStore_CleanupSweepsOldProgress(t *testing.T) {
	tier := NewMemoryBackend()
	s := New(DefaultConfig(), tier)
	ctx := context.Background()

	old := time.Now().Add(-8 * 24 * time.Hour)
	s.now = func() time.Time { return old }
	s.Put(ctx, progressKey("stale"), "x")

	s.now = time.Now
	s.Put(ctx, progressKey("fresh"), "y")

	s.Cleanup(ctx)

	if s.Get(ctx, progressKey("stale")) != nil {
		t.Error("week-old progress should be swept")
	}
	if s.Get(ctx, progressKey("fresh")) == nil {
		t.Error("fresh progress should survive the sweep")
	}
}

func TestStore_LastWriteWins(t *testing.T) {
	s := New(DefaultConfig(), NewMemoryBackend())
	ctx := context.Background()

	s.Put(ctx, progressKey("quiz-6"), "first")
	s.Put(ctx, progressKey("quiz-6"), "second")

	var out string
	if !s.GetJSON(ctx, progressKey("quiz-6"), &out) || out != "second" {
		t.Errorf("got %q, want the later write", out)
	}
}
