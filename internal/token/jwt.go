package token

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/authkeeper/internal/model"
)

var (
	_ model.TokenManager   = (*JWT)(nil)
	_ model.SessionRevoker = (*JWT)(nil)
)

const typeAccess = "access"

// Claims represents JWT claims of an access token. Generation is the
// subject's revocation cutoff at signing time.
type Claims struct {
	jwt.RegisteredClaims
	Email      string `json:"email"`
	TokenType  string `json:"typ"`
	Generation int64  `json:"gen,omitempty"`
}

// JWT implements TokenManager backed by symmetric HMAC.
//
// It also keeps a per-user revocation cutoff. Every token carries the cutoff
// its subject had when it was signed, and tokens carrying an older one are
// rejected. Cutoffs are exact integers, so they do not depend on the
// precision of iat.
type JWT struct {
	secretKey []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time

	mu      sync.RWMutex
	cutoffs map[uuid.UUID]int64 // unix nanoseconds, strictly increasing per user
}

// Option configures JWT.
type Option func(*JWT)

// WithIssuer sets the iss claim.
func WithIssuer(issuer string) Option {
	return func(j *JWT) { j.issuer = issuer }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) { j.now = now }
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string, accessTTL time.Duration, opts ...Option) *JWT {
	j := &JWT{
		secretKey: []byte(secretKey),
		accessTTL: accessTTL,
		now:       time.Now,
		cutoffs:   make(map[uuid.UUID]int64),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// AccessTTL returns the configured access token lifetime.
func (j *JWT) AccessTTL() time.Duration {
	return j.accessTTL
}

// GenerateAccessToken signs claims into a short-lived access token.
func (j *JWT) GenerateAccessToken(claims model.AccessClaims) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    j.issuer,
			Subject:   claims.Subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.accessTTL)),
		},
		Email:      claims.Email,
		TokenType:  typeAccess,
		Generation: j.generation(claims.Subject),
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// ParseAccessToken validates an access token and returns its claims.
func (j *JWT) ParseAccessToken(tokenString string) (model.AccessClaims, error) {
	claims := &Claims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, opts...)
	if err != nil {
		return model.AccessClaims{}, fmt.Errorf("%w: %v", model.ErrInvalidAccessToken, err)
	}
	if claims.TokenType != typeAccess {
		return model.AccessClaims{}, fmt.Errorf("%w: token type mismatch: %s", model.ErrInvalidAccessToken, claims.TokenType)
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.AccessClaims{}, fmt.Errorf("%w: bad subject", model.ErrInvalidAccessToken)
	}
	if claims.IssuedAt == nil {
		return model.AccessClaims{}, fmt.Errorf("%w: missing iat", model.ErrInvalidAccessToken)
	}

	if claims.Generation < j.generation(subject) {
		return model.AccessClaims{}, fmt.Errorf("%w: session revoked", model.ErrInvalidAccessToken)
	}

	return model.AccessClaims{
		Subject:   subject,
		Email:     claims.Email,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// RevokeSessions rejects every access token of userID signed before the call.
// Tokens signed after it returns stay valid.
func (j *JWT) RevokeSessions(_ context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return errors.New("user id is required")
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	gen := j.now().UnixNano()
	if prev, ok := j.cutoffs[userID]; ok && gen <= prev {
		gen = prev + 1
	}
	j.cutoffs[userID] = gen
	j.pruneLocked()

	return nil
}

// generation returns the user's current cutoff, zero if never revoked.
func (j *JWT) generation(userID uuid.UUID) int64 {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return j.cutoffs[userID]
}

// pruneLocked drops cutoffs older than one access TTL; every token they could
// reject has expired by then.
func (j *JWT) pruneLocked() {
	horizon := j.now().Add(-j.accessTTL).UnixNano()
	for id, cutoff := range j.cutoffs {
		if cutoff < horizon {
			delete(j.cutoffs, id)
		}
	}
}
