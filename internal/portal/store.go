package portal

import (
	"context"
	"sync"
)

// Store persists the application snapshot. Load is fail-open: an absent or
// unreadable snapshot yields DefaultState, never an error the caller must
// branch on; only infrastructure failures surface.
type Store interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, st State) error
}

// MemStore keeps the snapshot in memory. Used in tests and dev runs.
type MemStore struct {
	mu sync.RWMutex
	st *State
}

func NewMemStore() *MemStore { return &MemStore{} }

func (m *MemStore) Load(_ context.Context) (State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.st == nil {
		return DefaultState(), nil
	}
	return *m.st, nil
}

func (m *MemStore) Save(_ context.Context, st State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st = &st
	return nil
}
