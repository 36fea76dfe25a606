package platform

import "sync"

// MemSecureStore is an in-memory SecureStore for the demo and tests.
type MemSecureStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemSecureStore returns an empty store.
func NewMemSecureStore() *MemSecureStore {
	return &MemSecureStore{values: make(map[string]string)}
}

func (s *MemSecureStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key], nil
}

func (s *MemSecureStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemSecureStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
