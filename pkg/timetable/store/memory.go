package store

import "context"

// MemoryStore keeps slots in process memory. Nothing survives a restart.
type MemoryStore struct {
	data map[string]string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get returns the value of key, or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	value, ok := s.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set replaces the value of key.
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
