package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/authkeeper/internal/model"
)

// TokenManager is a mock type for the model.TokenManager type.
type TokenManager struct {
	mock.Mock
}

func (_m *TokenManager) GenerateAccessToken(claims model.AccessClaims) (string, error) {
	ret := _m.Called(claims)
	return ret.String(0), ret.Error(1)
}

func (_m *TokenManager) ParseAccessToken(token string) (model.AccessClaims, error) {
	ret := _m.Called(token)
	return ret.Get(0).(model.AccessClaims), ret.Error(1)
}

func (_m *TokenManager) AccessTTL() time.Duration {
	return _m.Called().Get(0).(time.Duration)
}

// NewTokenManager creates a new TokenManager mock and asserts its expectations on cleanup.
func NewTokenManager(t TestingT) *TokenManager {
	m := &TokenManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// SessionRevoker is a mock type for the model.SessionRevoker type.
type SessionRevoker struct {
	mock.Mock
}

func (_m *SessionRevoker) RevokeSessions(ctx context.Context, userID uuid.UUID) error {
	return _m.Called(ctx, userID).Error(0)
}

// NewSessionRevoker creates a new SessionRevoker mock and asserts its expectations on cleanup.
func NewSessionRevoker(t TestingT) *SessionRevoker {
	m := &SessionRevoker{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// SecretGenerator is a mock type for the model.SecretGenerator type.
type SecretGenerator struct {
	mock.Mock
}

func (_m *SecretGenerator) NewSecret() (string, error) {
	ret := _m.Called()
	return ret.String(0), ret.Error(1)
}

// NewSecretGenerator creates a new SecretGenerator mock and asserts its expectations on cleanup.
func NewSecretGenerator(t TestingT) *SecretGenerator {
	m := &SecretGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// PasswordHasher is a mock type for the model.PasswordHasher type.
type PasswordHasher struct {
	mock.Mock
}

func (_m *PasswordHasher) Hash(raw string) (string, error) {
	ret := _m.Called(raw)
	return ret.String(0), ret.Error(1)
}

func (_m *PasswordHasher) Verify(raw, hash string) bool {
	return _m.Called(raw, hash).Bool(0)
}

// NewPasswordHasher creates a new PasswordHasher mock and asserts its expectations on cleanup.
func NewPasswordHasher(t TestingT) *PasswordHasher {
	m := &PasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// ResetNotifier is a mock type for the model.ResetNotifier type.
type ResetNotifier struct {
	mock.Mock
}

func (_m *ResetNotifier) Deliver(ctx context.Context, ticket model.PasswordResetTicket) error {
	return _m.Called(ctx, ticket).Error(0)
}

// NewResetNotifier creates a new ResetNotifier mock and asserts its expectations on cleanup.
func NewResetNotifier(t TestingT) *ResetNotifier {
	m := &ResetNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
