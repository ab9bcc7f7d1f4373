package storage

import (
	"context"
	"encoding/json"
	"time"
)

// Store fans writes out to every tier best-effort and reads tiers in
// order, so one failed or wiped tier never loses data the other still
// holds. Tier faults (quota, disabled storage, corrupt rows) are caught
// here, warned about, and never propagated: every method is a no-op or
// returns absence on failure.
type Store struct {
	tiers []Backend
	cfg   Config
	now   func() time.Time
}

// New composes a store over tiers listed in read-priority order (durable
// first, session second).
func New(cfg Config, tiers ...Backend) *Store {
	return &Store{tiers: tiers, cfg: cfg, now: time.Now}
}

// Put serializes payload and writes it to every tier with the current
// write timestamp. A failing tier is skipped; the others may still
// succeed. Unserializable payloads are dropped with a warning.
func (s *Store) Put(ctx context.Context, k Key, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		warnf("storage: marshal %s: %v", k.String(), err)
		return
	}

	e := Entry{Payload: raw, StoredAt: s.now().UnixMilli()}
	for _, t := range s.tiers {
		if err := t.Put(ctx, k, e); err != nil {
			warnf("storage: %s put %s: %v", t.Name(), k.String(), err)
		}
	}
}

// Get returns the stored payload, or nil when the key is absent in every
// tier, unparsable, or expired under its kind's TTL. Expired and corrupt
// entries are treated as absent, not errors.
func (s *Store) Get(ctx context.Context, k Key) json.RawMessage {
	ttl := s.cfg.policy(k.Kind).TTL

	for _, t := range s.tiers {
		e, ok, err := t.Get(ctx, k)
		if err != nil {
			warnf("storage: %s get %s: %v", t.Name(), k.String(), err)
			continue
		}
		if !ok {
			continue
		}
		if s.expired(e, ttl) {
			continue
		}
		if !json.Valid(e.Payload) {
			warnf("storage: %s get %s: corrupt payload", t.Name(), k.String())
			continue
		}
		return e.Payload
	}
	return nil
}

// GetTier reads a key from the named tier only, with the same TTL and
// corruption rules as Get. Callers that rank tiers themselves (the result
// reconciler) use this; everyone else wants Get.
func (s *Store) GetTier(ctx context.Context, name string, k Key) json.RawMessage {
	ttl := s.cfg.policy(k.Kind).TTL
	for _, t := range s.tiers {
		if t.Name() != name {
			continue
		}
		e, ok, err := t.Get(ctx, k)
		if err != nil {
			warnf("storage: %s get %s: %v", t.Name(), k.String(), err)
			return nil
		}
		if !ok || s.expired(e, ttl) || !json.Valid(e.Payload) {
			return nil
		}
		return e.Payload
	}
	return nil
}

// GetJSON decodes the stored payload into dst. Returns false when the key
// is absent, expired, or does not decode.
func (s *Store) GetJSON(ctx context.Context, k Key, dst any) bool {
	raw := s.Get(ctx, k)
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		warnf("storage: decode %s: %v", k.String(), err)
		return false
	}
	return true
}

// Remove deletes the key from every tier. Idempotent.
func (s *Store) Remove(ctx context.Context, k Key) {
	for _, t := range s.tiers {
		if err := t.Remove(ctx, k); err != nil {
			warnf("storage: %s remove %s: %v", t.Name(), k.String(), err)
		}
	}
}

// Cleanup is the explicit maintenance pass. Per kind and tier it deletes
// entries older than the kind's MaxAge and then, independently, caps the
// number of live entries at the kind's capacity, evicting oldest writes
// first. Reads never trigger this; callers schedule it.
func (s *Store) Cleanup(ctx context.Context) {
	for kind, p := range s.cfg.Policies {
		for _, t := range s.tiers {
			s.cleanupKind(ctx, t, kind, p)
		}
	}
}

func (s *Store) cleanupKind(ctx context.Context, t Backend, kind string, p Policy) {
	entries, err := t.ListKind(ctx, kind)
	if err != nil {
		warnf("storage: %s list %s: %v", t.Name(), kind, err)
		return
	}

	cutoff := int64(0)
	if p.MaxAge > 0 {
		cutoff = s.now().Add(-p.MaxAge).UnixMilli()
	}

	var live []KeyedEntry
	for _, e := range entries {
		if cutoff > 0 && e.StoredAt < cutoff {
			s.removeKey(ctx, t, e.Key)
			continue
		}
		live = append(live, e)
	}

	// ListKind returns oldest first, so the overflow prefix is exactly
	// the eviction set.
	if excess := len(live) - p.cap(); excess > 0 {
		for _, e := range live[:excess] {
			s.removeKey(ctx, t, e.Key)
		}
	}
}

func (s *Store) removeKey(ctx context.Context, t Backend, key string) {
	if err := t.RemoveKey(ctx, key); err != nil {
		warnf("storage: %s evict %s: %v", t.Name(), key, err)
	}
}

// expired reports whether the entry is stale under ttl. Zero ttl never
// expires.
func (s *Store) expired(e Entry, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return s.now().UnixMilli()-e.StoredAt > ttl.Milliseconds()
}
