package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dtroode/authkeeper/internal/model"
	"github.com/dtroode/authkeeper/internal/storage"
)

var (
	_ model.TokenStore = (*Store)(nil)
	_ model.Pinger     = (*Store)(nil)
)

const scanBatch = 100

// Store keeps one key per token, <prefix>:<user id>:<digest>, and lets Redis
// expire it. Consume is a single DEL, which Redis executes atomically.
type Store struct {
	redis  redis.UniversalClient
	prefix string
}

// NewStore creates a Store. Distinct prefixes give independent namespaces on
// one Redis.
func NewStore(client redis.UniversalClient, prefix string) *Store {
	if prefix == "" {
		prefix = "tokens"
	}
	return &Store{redis: client, prefix: prefix}
}

func (s *Store) Store(ctx context.Context, userID uuid.UUID, secret string, ttl time.Duration) error {
	if ttl <= 0 {
		return s.Invalidate(ctx, userID, secret)
	}

	expiresAt := time.Now().Add(ttl).Unix()
	if err := s.redis.Set(ctx, s.key(userID, secret), expiresAt, ttl).Err(); err != nil {
		return unavailable("set", err)
	}
	return nil
}

func (s *Store) Validate(ctx context.Context, userID uuid.UUID, secret string) (bool, error) {
	n, err := s.redis.Exists(ctx, s.key(userID, secret)).Result()
	if err != nil {
		return false, unavailable("exists", err)
	}
	return n == 1, nil
}

func (s *Store) Consume(ctx context.Context, userID uuid.UUID, secret string) (bool, error) {
	n, err := s.redis.Del(ctx, s.key(userID, secret)).Result()
	if err != nil {
		return false, unavailable("del", err)
	}
	return n == 1, nil
}

func (s *Store) Invalidate(ctx context.Context, userID uuid.UUID, secret string) error {
	if err := s.redis.Del(ctx, s.key(userID, secret)).Err(); err != nil {
		return unavailable("del", err)
	}
	return nil
}

func (s *Store) InvalidateAll(ctx context.Context, userID uuid.UUID) error {
	pattern := escapeGlob(s.userPrefix(userID)) + "*"

	iter := s.redis.Scan(ctx, 0, pattern, scanBatch).Iterator()
	batch := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := s.redis.Del(ctx, batch...).Err(); err != nil {
				return unavailable("del", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return unavailable("scan", err)
	}
	if len(batch) > 0 {
		if err := s.redis.Del(ctx, batch...).Err(); err != nil {
			return unavailable("del", err)
		}
	}

	return nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.redis.Ping(ctx).Err(); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func (s *Store) userPrefix(userID uuid.UUID) string {
	return s.prefix + ":" + userID.String() + ":"
}

func (s *Store) key(userID uuid.UUID, secret string) string {
	return s.userPrefix(userID) + storage.Digest(secret)
}

func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: redis %s: %v", model.ErrStorageUnavailable, op, err)
}
