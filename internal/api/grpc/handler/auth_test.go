package handler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dtroode/authkeeper/internal/api/grpc/authapi"
	"github.com/dtroode/authkeeper/internal/mocks"
	"github.com/dtroode/authkeeper/internal/model"
	"github.com/dtroode/authkeeper/internal/testutil"
)

func newAuthHandler(t *testing.T) (*Auth, *mocks.AuthService, *mocks.ResetNotifier, *mocks.ContextManager) {
	svc := mocks.NewAuthService(t)
	notifier := mocks.NewResetNotifier(t)
	cm := mocks.NewContextManager(t)
	return NewAuth(svc, notifier, cm, testutil.MakeNoopLogger()), svc, notifier, cm
}

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	h, svc, _, _ := newAuthHandler(t)
	id := uuid.New()

	svc.On("Register", mock.Anything, model.Registration{Name: "Ann", Email: "ann@x.com", Password: "password123"}).
		Return(model.User{ID: id, Email: "ann@x.com"}, nil).Once()

	out, err := h.Register(context.Background(), &authapi.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, id.String(), out.GetId())
	assert.Equal(t, "ann@x.com", out.GetEmail())
}

func TestAuth_Register_Duplicate(t *testing.T) {
	t.Parallel()

	h, svc, _, _ := newAuthHandler(t)
	svc.On("Register", mock.Anything, mock.Anything).Return(model.User{}, model.ErrEmailTaken).Once()

	out, err := h.Register(context.Background(), &authapi.RegisterRequest{Email: "ann@x.com"})
	assert.Nil(t, out)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	h, svc, _, _ := newAuthHandler(t)
	svc.On("Login", mock.Anything, "ann@x.com", "password123").Return(model.TokenBundle{
		AccessToken:  "acc",
		RefreshToken: "ref",
		TokenType:    model.TokenTypeBearer,
		ExpiresIn:    900,
	}, nil).Once()
	svc.On("Login", mock.Anything, "ann@x.com", "nope").Return(model.TokenBundle{}, model.ErrInvalidCredentials).Once()

	out, err := h.Login(context.Background(), &authapi.LoginRequest{Email: "ann@x.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "acc", out.GetAccessToken())
	assert.Equal(t, "ref", out.GetRefreshToken())
	assert.Equal(t, "bearer", out.GetTokenType())
	assert.Equal(t, int64(900), out.GetExpiresIn())

	_, err = h.Login(context.Background(), &authapi.LoginRequest{Email: "ann@x.com", Password: "nope"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuth_Refresh(t *testing.T) {
	t.Parallel()

	h, svc, _, cm := newAuthHandler(t)
	userID := uuid.New()

	cm.On("GetUserIDFromContext", mock.Anything).Return(userID, true)
	svc.On("Refresh", mock.Anything, userID, "ref").Return(model.TokenBundle{AccessToken: "acc2", RefreshToken: "ref2"}, nil).Once()
	svc.On("Refresh", mock.Anything, userID, "used").Return(model.TokenBundle{}, model.ErrInvalidRefreshToken).Once()

	out, err := h.Refresh(context.Background(), &authapi.RefreshRequest{RefreshToken: "ref"})
	require.NoError(t, err)
	assert.Equal(t, "ref2", out.RefreshToken)

	_, err = h.Refresh(context.Background(), &authapi.RefreshRequest{RefreshToken: "used"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuth_Refresh_NoUser(t *testing.T) {
	t.Parallel()

	h, _, _, cm := newAuthHandler(t)
	cm.On("GetUserIDFromContext", mock.Anything).Return(uuid.Nil, false)

	_, err := h.Refresh(context.Background(), &authapi.RefreshRequest{RefreshToken: "ref"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuth_Logout(t *testing.T) {
	t.Parallel()

	h, svc, _, cm := newAuthHandler(t)
	userID := uuid.New()

	cm.On("GetUserIDFromContext", mock.Anything).Return(userID, true)
	svc.On("Logout", mock.Anything, userID, "").Return(nil).Once()

	out, err := h.Logout(context.Background(), &authapi.LogoutRequest{})
	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestAuth_Introspect(t *testing.T) {
	t.Parallel()

	h, svc, _, _ := newAuthHandler(t)
	id := uuid.New()
	svc.On("Introspect", mock.Anything, "acc").Return(model.Identity{ID: id, Email: "ann@x.com"}, nil).Once()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer acc"))
	out, err := h.Introspect(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, id.String(), out.GetId())
	assert.Equal(t, "ann@x.com", out.GetEmail())
	assert.NotNil(t, out.GetRoles())
	assert.Empty(t, out.GetRoles())

	_, err = h.Introspect(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuth_InitiatePasswordReset(t *testing.T) {
	t.Parallel()

	h, svc, notifier, _ := newAuthHandler(t)
	ticket := model.PasswordResetTicket{UserID: uuid.New(), Email: "ann@x.com", Token: "secret", ExpiresAt: time.Now().Add(time.Hour)}

	svc.On("InitiatePasswordReset", mock.Anything, "ann@x.com").Return(ticket, nil).Once()
	notifier.On("Deliver", mock.Anything, ticket).Return(nil).Once()

	out, err := h.InitiatePasswordReset(context.Background(), &authapi.InitiatePasswordResetRequest{Email: "ann@x.com"})
	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestAuth_InitiatePasswordReset_UnknownEmailLooksLikeSuccess(t *testing.T) {
	t.Parallel()

	h, svc, _, _ := newAuthHandler(t)
	svc.On("InitiatePasswordReset", mock.Anything, "ghost@x.com").Return(model.PasswordResetTicket{}, model.ErrUserNotFound).Once()

	out, err := h.InitiatePasswordReset(context.Background(), &authapi.InitiatePasswordResetRequest{Email: "ghost@x.com"})
	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestAuth_InitiatePasswordReset_DeliveryFailure(t *testing.T) {
	t.Parallel()

	h, svc, notifier, _ := newAuthHandler(t)
	svc.On("InitiatePasswordReset", mock.Anything, "ann@x.com").Return(model.PasswordResetTicket{UserID: uuid.New()}, nil).Once()
	notifier.On("Deliver", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := h.InitiatePasswordReset(context.Background(), &authapi.InitiatePasswordResetRequest{Email: "ann@x.com"})
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestAuth_CompletePasswordReset(t *testing.T) {
	t.Parallel()

	h, svc, _, _ := newAuthHandler(t)
	userID := uuid.New()
	svc.On("CompletePasswordReset", mock.Anything, model.PasswordResetCompletion{
		UserID:      userID,
		Token:       "secret",
		NewPassword: "new-password",
	}).Return(nil).Once()

	_, err := h.CompletePasswordReset(context.Background(), &authapi.CompletePasswordResetRequest{
		UserId:      userID.String(),
		Token:       "secret",
		NewPassword: "new-password",
	})
	require.NoError(t, err)

	_, err = h.CompletePasswordReset(context.Background(), &authapi.CompletePasswordResetRequest{UserId: "nope"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
