package session

import (
	"context"
	"encoding/json"
	"sync"
)

// Store persists sessions
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, uuid string) (*Session, error)
	Save(ctx context.Context, s *Session) error
}

// MemoryStore keeps sessions in process. Sessions are stored encoded, so
// callers never share a *Session with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string][]byte),
	}
}

// Create adds a new session
func (m *MemoryStore) Create(ctx context.Context, s *Session) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, found := m.sessions[s.UUID]; found {
		return ErrDuplicateSession
	}

	m.sessions[s.UUID] = doc
	return nil
}

// Get returns the session or ErrNotFound
func (m *MemoryStore) Get(ctx context.Context, uuid string) (*Session, error) {
	m.mu.RLock()
	doc, found := m.sessions[uuid]
	m.mu.RUnlock()

	if !found {
		return nil, ErrNotFound
	}

	var s Session
	if err := json.Unmarshal(doc, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// Save replaces an existing session
func (m *MemoryStore) Save(ctx context.Context, s *Session) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, found := m.sessions[s.UUID]; !found {
		return ErrNotFound
	}

	m.sessions[s.UUID] = doc
	return nil
}

// Len returns the number of sessions held
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
