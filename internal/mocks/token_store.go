package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// TokenStore is a mock type for the model.TokenStore type.
type TokenStore struct {
	mock.Mock
}

func (_m *TokenStore) Store(ctx context.Context, userID uuid.UUID, secret string, ttl time.Duration) error {
	return _m.Called(ctx, userID, secret, ttl).Error(0)
}

func (_m *TokenStore) Validate(ctx context.Context, userID uuid.UUID, secret string) (bool, error) {
	ret := _m.Called(ctx, userID, secret)
	return ret.Bool(0), ret.Error(1)
}

func (_m *TokenStore) Consume(ctx context.Context, userID uuid.UUID, secret string) (bool, error) {
	ret := _m.Called(ctx, userID, secret)
	return ret.Bool(0), ret.Error(1)
}

func (_m *TokenStore) Invalidate(ctx context.Context, userID uuid.UUID, secret string) error {
	return _m.Called(ctx, userID, secret).Error(0)
}

func (_m *TokenStore) InvalidateAll(ctx context.Context, userID uuid.UUID) error {
	return _m.Called(ctx, userID).Error(0)
}

// NewTokenStore creates a new TokenStore mock and asserts its expectations on cleanup.
func NewTokenStore(t TestingT) *TokenStore {
	m := &TokenStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Pinger is a mock type for the model.Pinger type.
type Pinger struct {
	mock.Mock
}

func (_m *Pinger) Ping(ctx context.Context) error {
	return _m.Called(ctx).Error(0)
}

// NewPinger creates a new Pinger mock and asserts its expectations on cleanup.
func NewPinger(t TestingT) *Pinger {
	m := &Pinger{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
