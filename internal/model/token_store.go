package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenStore keeps (user, secret) records with an absolute expiry.
//
// A record validates iff it exists and has not expired. Expired records found
// on read are deleted. All backend I/O failures wrap ErrStorageUnavailable.
type TokenStore interface {
	// Store creates or overwrites the record with expiry now+ttl.
	Store(ctx context.Context, userID uuid.UUID, secret string, ttl time.Duration) error
	Validate(ctx context.Context, userID uuid.UUID, secret string) (bool, error)
	// Consume atomically validates and deletes the record. It returns true to
	// exactly one caller for any stored record.
	Consume(ctx context.Context, userID uuid.UUID, secret string) (bool, error)
	Invalidate(ctx context.Context, userID uuid.UUID, secret string) error
	InvalidateAll(ctx context.Context, userID uuid.UUID) error
}

// Pinger is implemented by backends that can report their availability.
type Pinger interface {
	Ping(ctx context.Context) error
}
