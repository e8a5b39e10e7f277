package sessions

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	sess      Session
	expiresAt time.Time
}

// MemoryStore is the default single-process session backend: a
// mutex-guarded map with lazy TTL expiry.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok {
		return nil, nil
	}
	if time.Now().After(e.expiresAt) {
		delete(m.entries, id)
		return nil, nil
	}
	sess := e.sess // copy, so callers never share the stored value
	sess.dirty = false
	return &sess, nil
}

func (m *MemoryStore) Save(_ context.Context, sess *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweepLocked()
	m.entries[sess.ID] = memoryEntry{
		sess:      *sess,
		expiresAt: time.Now().Add(m.ttl),
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

// sweepLocked drops expired entries so abandoned sessions do not pile
// up. Called on the write path; the map stays small enough that a full
// scan is fine.
func (m *MemoryStore) sweepLocked() {
	now := time.Now()
	for id, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, id)
		}
	}
}
