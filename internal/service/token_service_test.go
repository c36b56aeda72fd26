package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/authkeeper/internal/mocks"
	"github.com/dtroode/authkeeper/internal/model"
	"github.com/dtroode/authkeeper/internal/testutil"
)

func TestTokenService_Issue(t *testing.T) {
	ctx := context.Background()
	user := model.User{ID: uuid.New(), Email: "ann@x.com"}

	manager := mocks.NewTokenManager(t)
	store := mocks.NewTokenStore(t)
	secrets := mocks.NewSecretGenerator(t)

	manager.On("GenerateAccessToken", model.AccessClaims{Subject: user.ID, Email: user.Email}).Return("access", nil).Once()
	manager.On("AccessTTL").Return(15 * time.Minute)
	secrets.On("NewSecret").Return("refresh", nil).Once()
	store.On("Store", ctx, user.ID, "refresh", 720*time.Hour).Return(nil).Once()

	svc := NewTokenService(manager, store, secrets, 720*time.Hour, testutil.MakeNoopLogger())

	bundle, err := svc.Issue(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, model.TokenBundle{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "bearer",
		ExpiresIn:    900,
	}, bundle)
}

func TestTokenService_Issue_ManagerError(t *testing.T) {
	manager := mocks.NewTokenManager(t)
	store := mocks.NewTokenStore(t)
	secrets := mocks.NewSecretGenerator(t)

	manager.On("GenerateAccessToken", mock.Anything).Return("", assert.AnError).Once()

	svc := NewTokenService(manager, store, secrets, time.Hour, testutil.MakeNoopLogger())

	_, err := svc.Issue(context.Background(), model.User{ID: uuid.New()})
	require.ErrorIs(t, err, assert.AnError)
}

func TestTokenService_Issue_StoreUnavailable(t *testing.T) {
	manager := mocks.NewTokenManager(t)
	store := mocks.NewTokenStore(t)
	secrets := mocks.NewSecretGenerator(t)

	manager.On("GenerateAccessToken", mock.Anything).Return("access", nil).Once()
	secrets.On("NewSecret").Return("refresh", nil).Once()
	store.On("Store", mock.Anything, mock.Anything, "refresh", time.Hour).Return(model.ErrStorageUnavailable).Once()

	svc := NewTokenService(manager, store, secrets, time.Hour, testutil.MakeNoopLogger())

	_, err := svc.Issue(context.Background(), model.User{ID: uuid.New()})
	require.ErrorIs(t, err, model.ErrStorageUnavailable)
}

func TestTokenService_Redeem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name      string
		presented string
		consumed  bool
		storeErr  error
		wantErr   error
	}{
		{name: "live token", presented: "r1", consumed: true},
		{name: "already used", presented: "r1", consumed: false, wantErr: model.ErrInvalidRefreshToken},
		{name: "empty token", presented: "", wantErr: model.ErrInvalidRefreshToken},
		{name: "store down", presented: "r1", storeErr: model.ErrStorageUnavailable, wantErr: model.ErrStorageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewTokenStore(t)
			if tt.presented != "" {
				store.On("Consume", ctx, userID, tt.presented).Return(tt.consumed, tt.storeErr).Once()
			}

			svc := NewTokenService(mocks.NewTokenManager(t), store, mocks.NewSecretGenerator(t), time.Hour, testutil.MakeNoopLogger())

			err := svc.Redeem(ctx, userID, tt.presented)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTokenService_GetUserID(t *testing.T) {
	userID := uuid.New()
	manager := mocks.NewTokenManager(t)
	manager.On("ParseAccessToken", "good").Return(model.AccessClaims{Subject: userID}, nil).Once()
	manager.On("ParseAccessToken", "bad").Return(model.AccessClaims{}, model.ErrInvalidAccessToken).Once()

	svc := NewTokenService(manager, mocks.NewTokenStore(t), mocks.NewSecretGenerator(t), time.Hour, testutil.MakeNoopLogger())

	got, err := svc.GetUserID(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = svc.GetUserID(context.Background(), "bad")
	assert.ErrorIs(t, err, model.ErrInvalidAccessToken)
}

func TestTokenService_Revoke(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := mocks.NewTokenStore(t)
	store.On("Invalidate", ctx, userID, "r1").Return(nil).Once()
	store.On("InvalidateAll", ctx, userID).Return(nil).Once()

	svc := NewTokenService(mocks.NewTokenManager(t), store, mocks.NewSecretGenerator(t), time.Hour, testutil.MakeNoopLogger())

	require.NoError(t, svc.Revoke(ctx, userID, "r1"))
	require.NoError(t, svc.RevokeAll(ctx, userID))
}
