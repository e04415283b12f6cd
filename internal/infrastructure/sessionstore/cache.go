// Package sessionstore keeps live chat sessions in process memory with TTL
// eviction. Sessions are scoped to one browser visit, so nothing here needs
// to survive a restart.
package sessionstore

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/keelridge/blankchart/internal/domain/session"
)

// CacheStore backs session.Store with an expiring in-memory cache. Every Put
// refreshes the TTL, so a session only expires after going idle.
type CacheStore struct {
	cache *gocache.Cache
}

// New creates a store whose sessions expire after ttl of inactivity.
func New(ttl time.Duration) *CacheStore {
	return &CacheStore{
		cache: gocache.New(ttl, ttl/2),
	}
}

// Put stores or refreshes a session.
func (s *CacheStore) Put(sess *session.Session) {
	s.cache.SetDefault(sess.ID, sess)
}

// Get returns the live session for an id.
func (s *CacheStore) Get(id string) (*session.Session, bool) {
	val, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	sess, ok := val.(*session.Session)
	return sess, ok
}
