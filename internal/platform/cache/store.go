package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Store is the in-process Backend used when no Redis is configured. A zero
// ttl keeps entries until they are invalidated.
type Store struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	items map[string]storedValue
}

type storedValue struct {
	data    []byte
	expires time.Time
}

func (v storedValue) live(at time.Time) bool {
	return v.expires.IsZero() || at.Before(v.expires)
}

func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl, now: time.Now, items: make(map[string]storedValue)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.items[key]
	if !ok {
		return nil, false, nil
	}
	if !v.live(s.now()) {
		delete(s.items, key)
		return nil, false, nil
	}
	return v.data, true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return nil
	}

	v := storedValue{data: append([]byte(nil), value...)}
	if s.ttl > 0 {
		v.expires = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.items[key] = v
	s.mu.Unlock()
	return nil
}

// DeletePrefix drops every key under prefix, along with any expired entries
// found on the way.
func (s *Store) DeletePrefix(_ context.Context, prefix string) error {
	if prefix == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	at := s.now()
	for key, v := range s.items {
		if strings.HasPrefix(key, prefix) || !v.live(at) {
			delete(s.items, key)
		}
	}
	return nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
