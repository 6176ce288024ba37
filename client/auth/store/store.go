package store

import (
	"context"
	"sync"

	"github.com/hammem/monarchmoney/schema"
)

// Store is a pluggable persistence layer for the login session.
// The in-memory default is fine for single-process use; the file store
// survives restarts.
type Store interface {
	Save(ctx context.Context, session *schema.Session) error
	Load(ctx context.Context) (*schema.Session, error)
	Delete(ctx context.Context) error
}

type memoryStore struct {
	mu      sync.RWMutex
	session *schema.Session
}

func (m *memoryStore) Save(ctx context.Context, session *schema.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = session
	return nil
}

func (m *memoryStore) Load(ctx context.Context) (*schema.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return nil, schema.ErrSessionNotFound
	}
	ret := *m.session
	return &ret, nil
}

func (m *memoryStore) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}

// NewMemoryStore creates an in-process session store.
func NewMemoryStore() Store {
	return &memoryStore{}
}
