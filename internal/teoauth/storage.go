package teoauth

import (
	"encoding/json"
	"sync"
)

// SessionKey is the storage key the dashboard has always used for its
// session blob.
const SessionKey = "teo-auth-session"

// SessionStore abstracts where the session blob lives so the web layer can
// keep it in a cookie session while tests use memory.
type SessionStore interface {
	Get() (*Session, error)
	Set(*Session) error
	Clear() error
}

// MemoryStore is a process-local SessionStore.
type MemoryStore struct {
	mu   sync.Mutex
	blob []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blob == nil {
		return nil, nil
	}
	var s Session
	if err := json.Unmarshal(m.blob, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *MemoryStore) Set(s *Session) error {
	blob, err := json.Marshal(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.blob = blob
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	m.blob = nil
	m.mu.Unlock()
	return nil
}
