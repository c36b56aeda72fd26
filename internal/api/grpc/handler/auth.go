package handler

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dtroode/authkeeper/internal/api/grpc/authapi"
	"github.com/dtroode/authkeeper/internal/logger"
	"github.com/dtroode/authkeeper/internal/model"
)

// AuthService defines the credential lifecycle operations.
type AuthService interface {
	Register(ctx context.Context, reg model.Registration) (model.User, error)
	Login(ctx context.Context, email, password string) (model.TokenBundle, error)
	Refresh(ctx context.Context, userID uuid.UUID, refreshToken string) (model.TokenBundle, error)
	Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error
	Introspect(ctx context.Context, accessToken string) (model.Identity, error)
	InitiatePasswordReset(ctx context.Context, email string) (model.PasswordResetTicket, error)
	CompletePasswordReset(ctx context.Context, req model.PasswordResetCompletion) error
}

var _ authapi.AuthServer = (*Auth)(nil)

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	authapi.UnimplementedAuthServer
	authService    AuthService
	notifier       model.ResetNotifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(
	authService AuthService,
	notifier model.ResetNotifier,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		authService:    authService,
		notifier:       notifier,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register creates an account. It does not log the user in.
func (h *Auth) Register(ctx context.Context, req *authapi.RegisterRequest) (*authapi.RegisterResponse, error) {
	user, err := h.authService.Register(ctx, model.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Info("Auth handler: registration rejected",
			"error", err.Error())
		return nil, handleError(err)
	}

	return &authapi.RegisterResponse{
		Id:    user.ID.String(),
		Email: user.Email,
	}, nil
}

// Login exchanges credentials for a token bundle.
func (h *Auth) Login(ctx context.Context, req *authapi.LoginRequest) (*authapi.TokenResponse, error) {
	bundle, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, handleError(err)
	}

	return tokenResponse(bundle), nil
}

// Refresh rotates the caller's refresh token.
func (h *Auth) Refresh(ctx context.Context, req *authapi.RefreshRequest) (*authapi.TokenResponse, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	bundle, err := h.authService.Refresh(ctx, userID, req.RefreshToken)
	if err != nil {
		h.logger.Info("Auth handler: refresh rejected",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return tokenResponse(bundle), nil
}

// Logout invalidates one refresh token, or all of them when none is given.
func (h *Auth) Logout(ctx context.Context, req *authapi.LogoutRequest) (*emptypb.Empty, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	if err := h.authService.Logout(ctx, userID, req.RefreshToken); err != nil {
		h.logger.Error("Auth handler: logout failed",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &emptypb.Empty{}, nil
}

// Introspect describes the identity behind the presented access token.
func (h *Auth) Introspect(ctx context.Context, _ *emptypb.Empty) (*authapi.IntrospectResponse, error) {
	token, err := auth.AuthFromMD(ctx, "bearer")
	if err != nil {
		return nil, err
	}

	identity, err := h.authService.Introspect(ctx, token)
	if err != nil {
		return nil, handleError(err)
	}

	roles := identity.Roles
	if roles == nil {
		roles = []string{}
	}

	return &authapi.IntrospectResponse{
		Id:    identity.ID.String(),
		Email: identity.Email,
		Roles: roles,
	}, nil
}

// InitiatePasswordReset hands a reset token to the notifier. The response
// is the same whether or not the email is known.
func (h *Auth) InitiatePasswordReset(ctx context.Context, req *authapi.InitiatePasswordResetRequest) (*emptypb.Empty, error) {
	ticket, err := h.authService.InitiatePasswordReset(ctx, req.Email)
	if errors.Is(err, model.ErrUserNotFound) {
		h.logger.Info("Auth handler: password reset requested for unknown email")
		return &emptypb.Empty{}, nil
	}
	if err != nil {
		return nil, handleError(err)
	}

	if err := h.notifier.Deliver(ctx, ticket); err != nil {
		h.logger.Error("Auth handler: failed to deliver reset token",
			"user_id", ticket.UserID,
			"error", err.Error())
		return nil, status.Error(codes.Unavailable, "failed to deliver reset token")
	}

	return &emptypb.Empty{}, nil
}

// CompletePasswordReset sets a new password using a delivered reset token.
func (h *Auth) CompletePasswordReset(ctx context.Context, req *authapi.CompletePasswordResetRequest) (*emptypb.Empty, error) {
	userID, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, handleError(model.ErrInvalidOrExpiredToken)
	}

	err = h.authService.CompletePasswordReset(ctx, model.PasswordResetCompletion{
		UserID:      userID,
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.logger.Info("Auth handler: password reset rejected",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &emptypb.Empty{}, nil
}

func tokenResponse(bundle model.TokenBundle) *authapi.TokenResponse {
	return &authapi.TokenResponse{
		AccessToken:  bundle.AccessToken,
		RefreshToken: bundle.RefreshToken,
		TokenType:    bundle.TokenType,
		ExpiresIn:    bundle.ExpiresIn,
	}
}
