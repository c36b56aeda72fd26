package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/authkeeper/internal/model"
	"github.com/dtroode/authkeeper/internal/storage"
)

var (
	_ model.TokenStore = (*Store)(nil)
	_ model.Pinger     = (*Store)(nil)
)

// Store is an in-process token store. Each instance owns its records.
type Store struct {
	mu      sync.Mutex
	records map[uuid.UUID]map[string]time.Time
	now     func() time.Time
}

// Option configures Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		records: make(map[uuid.UUID]map[string]time.Time),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Store(_ context.Context, userID uuid.UUID, secret string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byUser, ok := s.records[userID]
	if !ok {
		byUser = make(map[string]time.Time)
		s.records[userID] = byUser
	}
	byUser[storage.Digest(secret)] = s.now().Add(ttl)

	return nil
}

func (s *Store) Validate(_ context.Context, userID uuid.UUID, secret string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.liveLocked(userID, storage.Digest(secret)), nil
}

func (s *Store) Consume(_ context.Context, userID uuid.UUID, secret string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := storage.Digest(secret)
	if !s.liveLocked(userID, key) {
		return false, nil
	}
	s.deleteLocked(userID, key)

	return true, nil
}

func (s *Store) Invalidate(_ context.Context, userID uuid.UUID, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteLocked(userID, storage.Digest(secret))

	return nil
}

func (s *Store) InvalidateAll(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, userID)

	return nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error {
	return nil
}

// liveLocked reports whether the record exists and is unexpired, deleting it
// when expired.
func (s *Store) liveLocked(userID uuid.UUID, key string) bool {
	expiresAt, ok := s.records[userID][key]
	if !ok {
		return false
	}
	if s.now().After(expiresAt) {
		s.deleteLocked(userID, key)
		return false
	}
	return true
}

func (s *Store) deleteLocked(userID uuid.UUID, key string) {
	byUser, ok := s.records[userID]
	if !ok {
		return
	}
	delete(byUser, key)
	if len(byUser) == 0 {
		delete(s.records, userID)
	}
}
