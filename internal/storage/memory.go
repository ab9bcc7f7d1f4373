package storage

import (
	"context"
	"sort"
	"sync"
)

// MemoryBackend is the session-scoped tier: entries live only as long as
// the process, the way sessionStorage lives only as long as the tab.
type MemoryBackend struct {
	mu      sync.Mutex
	entries map[string]memEntry
}

type memEntry struct {
	kind string
	e    Entry
}

// NewMemoryBackend creates an empty in-process tier.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string]memEntry)}
}

func (m *MemoryBackend) Name() string { return TierMemory }

func (m *MemoryBackend) Put(_ context.Context, k Key, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[k.String()] = memEntry{kind: k.Kind, e: e}
	return nil
}

func (m *MemoryBackend) Get(_ context.Context, k Key) (Entry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	me, ok := m.entries[k.String()]
	if !ok {
		return Entry{}, false, nil
	}
	return me.e, true, nil
}

func (m *MemoryBackend) Remove(_ context.Context, k Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, k.String())
	return nil
}

func (m *MemoryBackend) ListKind(_ context.Context, kind string) ([]KeyedEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []KeyedEntry
	for key, me := range m.entries {
		if me.kind == kind {
			out = append(out, KeyedEntry{Key: key, Entry: me.e})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StoredAt != out[j].StoredAt {
			return out[i].StoredAt < out[j].StoredAt
		}
		return out[i].Key < out[j].Key
	})
	return out, nil
}

func (m *MemoryBackend) RemoveKey(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
