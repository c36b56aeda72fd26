package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/authkeeper/internal/logger"
	"github.com/dtroode/authkeeper/internal/model"
)

// TokenService issues, rotates and revokes token bundles. It composes the
// TokenManager with the refresh TokenStore.
type TokenService struct {
	manager    model.TokenManager
	store      model.TokenStore
	secrets    model.SecretGenerator
	refreshTTL time.Duration
	logger     *logger.Logger
}

func NewTokenService(
	manager model.TokenManager,
	store model.TokenStore,
	secrets model.SecretGenerator,
	refreshTTL time.Duration,
	logger *logger.Logger,
) *TokenService {
	return &TokenService{
		manager:    manager,
		store:      store,
		secrets:    secrets,
		refreshTTL: refreshTTL,
		logger:     logger,
	}
}

// Issue mints an access token for the user and persists a fresh refresh secret.
func (s *TokenService) Issue(ctx context.Context, user model.User) (model.TokenBundle, error) {
	access, err := s.manager.GenerateAccessToken(model.AccessClaims{
		Subject: user.ID,
		Email:   user.Email,
	})
	if err != nil {
		return model.TokenBundle{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, err := s.secrets.NewSecret()
	if err != nil {
		return model.TokenBundle{}, fmt.Errorf("failed to generate refresh secret: %w", err)
	}

	if err := s.store.Store(ctx, user.ID, refresh, s.refreshTTL); err != nil {
		s.logger.Error("Token service: failed to persist refresh token",
			"user_id", user.ID,
			"error", err.Error())
		return model.TokenBundle{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return model.TokenBundle{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    model.TokenTypeBearer,
		ExpiresIn:    int64(s.manager.AccessTTL() / time.Second),
	}, nil
}

// Redeem consumes a presented refresh secret. It succeeds at most once per
// secret, so two concurrent refreshes with one token cannot both win.
func (s *TokenService) Redeem(ctx context.Context, userID uuid.UUID, presented string) error {
	if presented == "" {
		return model.ErrInvalidRefreshToken
	}

	ok, err := s.store.Consume(ctx, userID, presented)
	if err != nil {
		return fmt.Errorf("failed to consume refresh token: %w", err)
	}
	if !ok {
		return model.ErrInvalidRefreshToken
	}

	return nil
}

func (s *TokenService) Revoke(ctx context.Context, userID uuid.UUID, presented string) error {
	return s.store.Invalidate(ctx, userID, presented)
}

func (s *TokenService) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	return s.store.InvalidateAll(ctx, userID)
}

// GetUserID resolves the subject of a valid access token.
func (s *TokenService) GetUserID(_ context.Context, token string) (uuid.UUID, error) {
	claims, err := s.manager.ParseAccessToken(token)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.Subject, nil
}

// ParseAccessToken returns the claims of a valid access token.
func (s *TokenService) ParseAccessToken(token string) (model.AccessClaims, error) {
	return s.manager.ParseAccessToken(token)
}
