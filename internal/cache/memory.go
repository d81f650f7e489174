package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryEntry struct {
	value   []byte
	expires time.Time
}

// MemoryStore is a process-local Store backed by an expirable LRU.
type MemoryStore struct {
	lru    *lru.LRU[string, memoryEntry]
	closed atomic.Bool

	// mu orders conditional writes against invalidations.
	mu   sync.Mutex
	gens map[string]uint64
}

// NewMemoryStore creates a store holding at most size entries. ttl caps the
// lifetime of every entry; Set may shorten it per entry.
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size < 16 {
		size = 16
	}
	return &MemoryStore{
		lru:  lru.NewLRU[string, memoryEntry](size, nil, ttl),
		gens: make(map[string]uint64),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if s.closed.Load() {
		return nil, false, ErrClosed
	}
	e, ok := s.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && time.Now().After(e.expires) {
		s.lru.Remove(key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if s.closed.Load() {
		return ErrClosed
	}
	s.add(key, value, ttl)
	return nil
}

func (s *MemoryStore) add(key string, value []byte, ttl time.Duration) {
	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expires = time.Now().Add(ttl)
	}
	s.lru.Add(key, e)
}

func (s *MemoryStore) Generation(_ context.Context, key string) (uint64, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[View(key)], nil
}

func (s *MemoryStore) SetIfGeneration(_ context.Context, key string, value []byte, ttl time.Duration, gen uint64) (bool, error) {
	if s.closed.Load() {
		return false, ErrClosed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gens[View(key)] != gen {
		return false, nil
	}
	s.add(key, value, ttl)
	return true, nil
}

func (s *MemoryStore) Invalidate(_ context.Context, prefixes ...string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range views(prefixes) {
		s.gens[v]++
	}
	for _, key := range s.lru.Keys() {
		if matchesAny(key, prefixes) {
			s.lru.Remove(key)
		}
	}
	return nil
}

// Len returns the number of live entries.
func (s *MemoryStore) Len() int {
	return s.lru.Len()
}

func (s *MemoryStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.lru.Purge()
	return nil
}
