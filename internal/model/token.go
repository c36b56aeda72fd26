package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenTypeBearer is the only token type handed out.
const TokenTypeBearer = "bearer"

// TokenManager signs and parses access tokens.
type TokenManager interface {
	GenerateAccessToken(claims AccessClaims) (string, error)
	ParseAccessToken(token string) (AccessClaims, error)
	AccessTTL() time.Duration
}

// SessionRevoker drops server-side session state so that access tokens issued
// before the call are no longer accepted.
type SessionRevoker interface {
	RevokeSessions(ctx context.Context, userID uuid.UUID) error
}

// SecretGenerator produces opaque random secrets for refresh and reset tokens.
type SecretGenerator interface {
	NewSecret() (string, error)
}

// PasswordHasher hashes and verifies passwords with a slow adaptive function.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Verify(raw, hash string) bool
}

// AccessClaims is the claim bundle carried by an access token.
type AccessClaims struct {
	Subject   uuid.UUID
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenBundle is returned by login and refresh.
type TokenBundle struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int64
}
