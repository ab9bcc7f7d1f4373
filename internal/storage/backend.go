// Package storage is a capacity- and TTL-bounded key/value store for quiz
// state, written redundantly to an ordered list of tiers. It is the only
// component that touches the underlying stores; everything else goes
// through the composite (kind, entityId, subKind) namespace.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Entry kinds. Each kind gets its own TTL/age/capacity policy.
const (
	// KindProgress holds in-progress attempt snapshots. Never expires on
	// read, but is swept by age and capped by Cleanup.
	KindProgress = "quiz_progress"

	// KindTempResult holds completed results awaiting server confirmation
	// or an unauthenticated user's return. Expires after a day.
	KindTempResult = "temp_result"

	// KindPendingResult holds results stashed just before an auth
	// redirect, claimed after the user signs in.
	KindPendingResult = "pending_result"

	// KindAuthFlow holds the single global marker that an auth redirect
	// is in flight, so pending results aren't cleared mid-redirect.
	KindAuthFlow = "auth_flow"
)

// Tier names returned by the shipped backends' Name methods. Callers that
// address one tier through Store.GetTier use these instead of literals.
const (
	// TierMemory is the process-local session tier.
	TierMemory = "memory"

	// TierSQLite is the durable tier.
	TierSQLite = "sqlite"
)

// Key addresses one entry. SubKind is typically the quiz type; either part
// may be empty for global entries.
type Key struct {
	Kind     string
	EntityID string
	SubKind  string
}

// String renders the composite storage key: {kind}_{entityId}_{subKind}.
func (k Key) String() string {
	s := k.Kind
	if k.EntityID != "" {
		s += "_" + k.EntityID
	}
	if k.SubKind != "" {
		s += "_" + k.SubKind
	}
	return s
}

// AuthFlowKey is the global auth-in-progress marker key.
func AuthFlowKey() Key {
	return Key{Kind: KindAuthFlow, EntityID: "global"}
}

// Entry is a stored payload plus its write timestamp. Staleness is judged
// lazily on read; nothing sweeps eagerly.
type Entry struct {
	Payload  json.RawMessage `json:"payload"`
	StoredAt int64           `json:"storedAtEpochMs"`
}

// KeyedEntry pairs an entry with its full key, for kind scans.
type KeyedEntry struct {
	Key string
	Entry
}

// Backend is one storage tier. Implementations must be safe for use from
// multiple goroutines; errors are reported, never panicked.
type Backend interface {
	// Name identifies the tier in warnings ("memory", "sqlite").
	Name() string

	// Put stores or replaces the entry at k.
	Put(ctx context.Context, k Key, e Entry) error

	// Get returns the entry at k. The boolean is false when absent.
	Get(ctx context.Context, k Key) (Entry, bool, error)

	// Remove deletes the entry at k. Removing a missing key is not an error.
	Remove(ctx context.Context, k Key) error

	// RemoveKey deletes by raw composite key, for cleanup sweeps working
	// from ListKind output.
	RemoveKey(ctx context.Context, key string) error

	// ListKind returns every entry of a kind, oldest write first.
	ListKind(ctx context.Context, kind string) ([]KeyedEntry, error)
}

// warnf reports a swallowed storage fault. Overridable so tests stay quiet.
var warnf = func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
