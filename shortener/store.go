package shortener

import "sync"

// Store maps integer keys to URLs.
type Store interface {
	// Put stores url under the next key and returns that key.
	Put(url string) (uint64, error)
	// Get returns the URL stored under key.
	Get(key uint64) (string, bool)
	// Len returns the number of stored URLs.
	Len() int
	// Reset forgets every URL and restarts keys from 0.
	Reset()
}

// MemoryStore is an in-process Store. The zero value is not usable; call
// NewMemoryStore. It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	urls map[uint64]string
	next uint64
}

// NewMemoryStore returns an empty store whose first key is 0.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{urls: make(map[uint64]string)}
}

// Put implements Store.
func (s *MemoryStore) Put(url string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.next
	s.urls[key] = url
	s.next++

	return key, nil
}

// Get implements Store.
func (s *MemoryStore) Get(key uint64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	url, ok := s.urls[key]

	return url, ok
}

// Len implements Store.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.urls)
}

// Reset implements Store.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.urls = make(map[uint64]string)
	s.next = 0
}
