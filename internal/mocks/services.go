package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/authkeeper/internal/model"
)

// AuthService is a mock type for the handler.AuthService type.
type AuthService struct {
	mock.Mock
}

func (_m *AuthService) Register(ctx context.Context, reg model.Registration) (model.User, error) {
	ret := _m.Called(ctx, reg)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *AuthService) Login(ctx context.Context, email, password string) (model.TokenBundle, error) {
	ret := _m.Called(ctx, email, password)
	return ret.Get(0).(model.TokenBundle), ret.Error(1)
}

func (_m *AuthService) Refresh(ctx context.Context, userID uuid.UUID, refreshToken string) (model.TokenBundle, error) {
	ret := _m.Called(ctx, userID, refreshToken)
	return ret.Get(0).(model.TokenBundle), ret.Error(1)
}

func (_m *AuthService) Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	return _m.Called(ctx, userID, refreshToken).Error(0)
}

func (_m *AuthService) Introspect(ctx context.Context, accessToken string) (model.Identity, error) {
	ret := _m.Called(ctx, accessToken)
	return ret.Get(0).(model.Identity), ret.Error(1)
}

func (_m *AuthService) InitiatePasswordReset(ctx context.Context, email string) (model.PasswordResetTicket, error) {
	ret := _m.Called(ctx, email)
	return ret.Get(0).(model.PasswordResetTicket), ret.Error(1)
}

func (_m *AuthService) CompletePasswordReset(ctx context.Context, req model.PasswordResetCompletion) error {
	return _m.Called(ctx, req).Error(0)
}

// NewAuthService creates a new AuthService mock and asserts its expectations on cleanup.
func NewAuthService(t TestingT) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// AccessService is a mock type for the handler.AccessService type.
type AccessService struct {
	mock.Mock
}

func (_m *AccessService) AssignRole(ctx context.Context, userID uuid.UUID, roleName string) error {
	return _m.Called(ctx, userID, roleName).Error(0)
}

func (_m *AccessService) GetUserRoles(ctx context.Context, userID uuid.UUID) ([]model.RoleView, error) {
	ret := _m.Called(ctx, userID)
	views, _ := ret.Get(0).([]model.RoleView)
	return views, ret.Error(1)
}

func (_m *AccessService) HasRole(ctx context.Context, userID uuid.UUID, roleName string) (bool, error) {
	ret := _m.Called(ctx, userID, roleName)
	return ret.Bool(0), ret.Error(1)
}

func (_m *AccessService) ListRoles(ctx context.Context) ([]model.RoleView, error) {
	ret := _m.Called(ctx)
	views, _ := ret.Get(0).([]model.RoleView)
	return views, ret.Error(1)
}

// NewAccessService creates a new AccessService mock and asserts its expectations on cleanup.
func NewAccessService(t TestingT) *AccessService {
	m := &AccessService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// TokenService is a mock type for the middleware.TokenService type.
type TokenService struct {
	mock.Mock
}

func (_m *TokenService) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	ret := _m.Called(ctx, token)
	return ret.Get(0).(uuid.UUID), ret.Error(1)
}

// NewTokenService creates a new TokenService mock and asserts its expectations on cleanup.
func NewTokenService(t TestingT) *TokenService {
	m := &TokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
