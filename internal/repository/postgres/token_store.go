package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/authkeeper/internal/model"
	"github.com/dtroode/authkeeper/internal/storage"
)

var (
	_ model.TokenStore = (*TokenRepository)(nil)
	_ model.Pinger     = (*TokenRepository)(nil)
)

// TokenRepository is a token store on the token_records table. Rows of
// different namespaces never see each other.
type TokenRepository struct {
	db        *Connection
	namespace string
	now       func() time.Time
}

// TokenOption configures TokenRepository.
type TokenOption func(*TokenRepository)

// WithTokenClock replaces time.Now.
func WithTokenClock(now func() time.Time) TokenOption {
	return func(r *TokenRepository) { r.now = now }
}

func NewTokenRepository(db *Connection, namespace string, opts ...TokenOption) *TokenRepository {
	r := &TokenRepository{db: db, namespace: namespace, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *TokenRepository) Store(ctx context.Context, userID uuid.UUID, secret string, ttl time.Duration) error {
	const query = `
        INSERT INTO token_records (namespace, user_id, token_hash, expires_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (namespace, user_id, token_hash) DO UPDATE SET expires_at = EXCLUDED.expires_at
    `
	expiresAt := r.now().Add(ttl).UTC()
	if _, err := r.db.ExecContext(ctx, query, r.namespace, userID, storage.Digest(secret), expiresAt); err != nil {
		return unavailable("store token", err)
	}
	return nil
}

func (r *TokenRepository) Validate(ctx context.Context, userID uuid.UUID, secret string) (bool, error) {
	const query = `
        SELECT expires_at FROM token_records
        WHERE namespace = $1 AND user_id = $2 AND token_hash = $3
    `
	const purge = `
        DELETE FROM token_records
        WHERE namespace = $1 AND user_id = $2 AND token_hash = $3 AND expires_at < $4
    `
	digest := storage.Digest(secret)

	var expiresAt time.Time
	err := r.db.QueryRowContext(ctx, query, r.namespace, userID, digest).Scan(&expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, unavailable("validate token", err)
	}

	now := r.now()
	if now.After(expiresAt) {
		if _, err := r.db.ExecContext(ctx, purge, r.namespace, userID, digest, now.UTC()); err != nil {
			return false, unavailable("purge token", err)
		}
		return false, nil
	}

	return true, nil
}

// Consume deletes the row and inspects what it deleted; the DELETE takes the
// row lock, so only one caller gets a row back.
func (r *TokenRepository) Consume(ctx context.Context, userID uuid.UUID, secret string) (bool, error) {
	const query = `
        DELETE FROM token_records
        WHERE namespace = $1 AND user_id = $2 AND token_hash = $3
        RETURNING expires_at
    `
	var expiresAt time.Time
	err := r.db.QueryRowContext(ctx, query, r.namespace, userID, storage.Digest(secret)).Scan(&expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, unavailable("consume token", err)
	}

	return !r.now().After(expiresAt), nil
}

func (r *TokenRepository) Invalidate(ctx context.Context, userID uuid.UUID, secret string) error {
	const query = `
        DELETE FROM token_records
        WHERE namespace = $1 AND user_id = $2 AND token_hash = $3
    `
	if _, err := r.db.ExecContext(ctx, query, r.namespace, userID, storage.Digest(secret)); err != nil {
		return unavailable("invalidate token", err)
	}
	return nil
}

func (r *TokenRepository) InvalidateAll(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM token_records WHERE namespace = $1 AND user_id = $2`

	if _, err := r.db.ExecContext(ctx, query, r.namespace, userID); err != nil {
		return unavailable("invalidate user tokens", err)
	}
	return nil
}

// Ping checks the database is reachable.
func (r *TokenRepository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: postgres %s: %v", model.ErrStorageUnavailable, op, err)
}
