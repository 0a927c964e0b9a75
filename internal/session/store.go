package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Default configuration values for Store.
const (
	DefaultTTL             = 24 * time.Hour
	DefaultCleanupInterval = 10 * time.Minute
)

// Store holds sessions in memory and expires them after a period of
// inactivity. Values handed out by Get are copies; callers persist changes
// with Save.
type Store struct {
	cache *cache.Cache
}

// StoreOpts holds parameters for creating a Store.
type StoreOpts struct {
	TTL             time.Duration // defaults to DefaultTTL
	CleanupInterval time.Duration // defaults to DefaultCleanupInterval
}

// NewStore creates a Store.
func NewStore(opts StoreOpts) *Store {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	cleanup := opts.CleanupInterval
	if cleanup <= 0 {
		cleanup = DefaultCleanupInterval
	}
	return &Store{cache: cache.New(ttl, cleanup)}
}

// New returns an empty session with a fresh random id. It is not stored until
// Save is called.
func (s *Store) New() *Session {
	return &Session{ID: uuid.NewString()}
}

// Get returns a copy of the session with the given id.
func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Session).clone(), true
}

// Save stores a copy of sess and resets its expiry.
func (s *Store) Save(sess *Session) {
	s.cache.Set(sess.ID, sess.clone(), cache.DefaultExpiration)
}

// Delete removes the session with the given id.
func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}
