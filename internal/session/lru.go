package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRUStore bounds memory for long-running deployments: at most cap
// sessions, each expiring ttl after last write. An evicted session is
// simply forgotten; the next message on its id starts a fresh one.
type LRUStore struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, *Session]
}

// NewLRUStore creates a bounded store holding at most cap sessions with
// the given per-session TTL. A ttl of 0 disables expiry.
func NewLRUStore(cap int, ttl time.Duration) *LRUStore {
	return &LRUStore{
		lru: expirable.NewLRU[string, *Session](cap, nil, ttl),
	}
}

func (s *LRUStore) GetOrCreate(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.lru.Get(id); ok {
		return sess
	}
	sess := &Session{ID: id}
	s.lru.Add(id, sess)
	return sess
}

func (s *LRUStore) Reset(id string) {
	s.mu.Lock()
	sess, ok := s.lru.Get(id)
	s.mu.Unlock()
	if !ok {
		return
	}

	sess.Lock()
	sess.Clear()
	sess.Unlock()
}

func (s *LRUStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lru.Len()
}

var _ Store = (*LRUStore)(nil)
