package session

import "sync"

// Storage keys for the durable session entries. Absence of an entry is
// treated as "no session".
const (
	KeyAccessToken     = "access_token"
	KeyCurrentUserID   = "currentUserID"
	KeyCurrentUserName = "currentUserName"
)

// Storage is durable key-value storage for scalar session state.
//
// Business logic never touches ambient storage directly; implementations are
// injected so tests can substitute an in-memory fake. Storage faults are not
// expected to be recoverable: implementations log and degrade to "absent"
// rather than returning errors.
type Storage interface {
	Get(key string) (string, bool) // Get returns the value for key, or false if absent
	Set(key, value string)         // Set persists value under key
	Remove(key string)             // Remove deletes the entry for key
}

// MemoryStorage is an in-memory [Storage] implementation.
//
// Used by tests and by the server execution context, where no durable
// browser storage exists.
type MemoryStorage struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{entries: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.entries[key]
	return value, ok
}

func (m *MemoryStorage) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

func (m *MemoryStorage) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}
