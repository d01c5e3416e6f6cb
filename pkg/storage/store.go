// Package storage is the key-value persistence gateway used for save data.
package storage

import "sync"

// Store is a string key-value store. Writes are buffered until Flush.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Flush() error
}

// MemoryStore keeps values in memory only
type MemoryStore struct {
	mu      sync.RWMutex
	values  map[string]string
	flushes int
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *MemoryStore) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushes++
	return nil
}

// Flushes returns how many times Flush has been called
func (m *MemoryStore) Flushes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flushes
}
