package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"

	"github.com/dtroode/authkeeper/internal/logger"
	"github.com/dtroode/authkeeper/internal/model"
	"github.com/dtroode/authkeeper/internal/password"
)

const (
	minPasswordLength = 8
	maxNameLength     = 255

	// dummyPassword is hashed once and verified against when a login names an
	// unknown email, so both failure paths spend similar time.
	dummyPassword = "authkeeper-dummy-password"
)

// Policy holds the lifecycle settings that are not owned by a collaborator.
type Policy struct {
	ResetTTL    time.Duration
	DefaultRole string
}

// Auth is the credential lifecycle manager.
type Auth struct {
	users    model.UserStore
	roles    model.RoleStore
	tokens   *TokenService
	resets   model.TokenStore
	hasher   model.PasswordHasher
	secrets  model.SecretGenerator
	sessions model.SessionRevoker
	policy   Policy
	recorder OutcomeRecorder
	logger   *logger.Logger

	dummyOnce sync.Once
	dummyHash string
}

// AuthOption configures Auth.
type AuthOption func(*Auth)

// WithAuthRecorder sets the recorder for operation outcomes.
func WithAuthRecorder(r OutcomeRecorder) AuthOption {
	return func(a *Auth) { a.recorder = r }
}

func NewAuth(
	users model.UserStore,
	roles model.RoleStore,
	tokens *TokenService,
	resets model.TokenStore,
	hasher model.PasswordHasher,
	secrets model.SecretGenerator,
	sessions model.SessionRevoker,
	policy Policy,
	logger *logger.Logger,
	opts ...AuthOption,
) *Auth {
	a := &Auth{
		users:    users,
		roles:    roles,
		tokens:   tokens,
		resets:   resets,
		hasher:   hasher,
		secrets:  secrets,
		sessions: sessions,
		policy:   policy,
		recorder: noopRecorder{},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Register creates a user with a hashed password and the default role. It
// does not mint tokens.
func (a *Auth) Register(ctx context.Context, reg model.Registration) (user model.User, err error) {
	defer func() { a.recorder.RecordOutcome("register", outcomeOf(err)) }()

	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = normalizeEmail(reg.Email)

	a.logger.Debug("Auth service: starting user registration",
		"email", reg.Email)

	if err := validateRegistration(reg); err != nil {
		return model.User{}, err
	}

	_, exists, err := a.users.GetByEmail(ctx, reg.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", reg.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if exists {
		a.logger.Info("Auth service: user already exists",
			"email", reg.Email)
		return model.User{}, model.ErrEmailTaken
	}

	hash, err := a.hasher.Hash(reg.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user = model.User{
		ID:           uuid.New(),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: hash,
	}

	if a.policy.DefaultRole != "" {
		role, ok, err := a.roles.GetByName(ctx, a.policy.DefaultRole)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to get default role: %w", err)
		}
		if ok {
			user.Roles = []model.Role{role}
		}
	}

	saved, err := a.users.Save(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return model.User{}, model.ErrEmailTaken
		}
		a.logger.Error("Auth service: failed to create user",
			"email", reg.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"user_id", saved.ID)

	return saved, nil
}

// Login verifies the credentials and issues a token bundle. An unknown email
// and a wrong password produce the same error.
func (a *Auth) Login(ctx context.Context, email, rawPassword string) (bundle model.TokenBundle, err error) {
	defer func() { a.recorder.RecordOutcome("login", outcomeOf(err)) }()

	email = normalizeEmail(email)

	user, ok, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"error", err.Error())
		return model.TokenBundle{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if !ok {
		a.hasher.Verify(rawPassword, a.dummy())
		return model.TokenBundle{}, model.ErrInvalidCredentials
	}
	if !a.hasher.Verify(rawPassword, user.PasswordHash) {
		a.logger.Info("Auth service: password mismatch",
			"user_id", user.ID)
		return model.TokenBundle{}, model.ErrInvalidCredentials
	}

	bundle, err = a.tokens.Issue(ctx, user)
	if err != nil {
		return model.TokenBundle{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed successfully",
		"user_id", user.ID)

	return bundle, nil
}

// Refresh rotates a refresh token. The presented secret is consumed before
// the replacement is minted, so a failure after that point requires a new
// login rather than permitting reuse.
func (a *Auth) Refresh(ctx context.Context, userID uuid.UUID, refreshToken string) (bundle model.TokenBundle, err error) {
	defer func() { a.recorder.RecordOutcome("refresh", outcomeOf(err)) }()

	if err := a.tokens.Redeem(ctx, userID, refreshToken); err != nil {
		if !errors.Is(err, model.ErrInvalidRefreshToken) {
			a.logger.Error("Auth service: failed to redeem refresh token",
				"user_id", userID,
				"error", err.Error())
		}
		return model.TokenBundle{}, err
	}

	user, ok, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return model.TokenBundle{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !ok {
		return model.TokenBundle{}, model.ErrInvalidRefreshToken
	}

	bundle, err = a.tokens.Issue(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to issue rotated token",
			"user_id", userID,
			"error", err.Error())
		return model.TokenBundle{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return bundle, nil
}

// Logout invalidates the given refresh token, or every refresh token of the
// user when none is given, and drops the user's access sessions.
func (a *Auth) Logout(ctx context.Context, userID uuid.UUID, refreshToken string) (err error) {
	defer func() { a.recorder.RecordOutcome("logout", outcomeOf(err)) }()

	if refreshToken != "" {
		err = a.tokens.Revoke(ctx, userID, refreshToken)
	} else {
		err = a.tokens.RevokeAll(ctx, userID)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to revoke refresh tokens",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	if err := a.sessions.RevokeSessions(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	a.logger.Info("Auth service: logout completed",
		"user_id", userID,
		"all_sessions", refreshToken == "")

	return nil
}

// InitiatePasswordReset stores a reset secret valid for the policy TTL and
// returns it for out-of-band delivery.
func (a *Auth) InitiatePasswordReset(ctx context.Context, email string) (ticket model.PasswordResetTicket, err error) {
	defer func() { a.recorder.RecordOutcome("initiate_password_reset", outcomeOf(err)) }()

	email = normalizeEmail(email)

	user, ok, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return model.PasswordResetTicket{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if !ok {
		return model.PasswordResetTicket{}, model.ErrUserNotFound
	}

	secret, err := a.secrets.NewSecret()
	if err != nil {
		return model.PasswordResetTicket{}, fmt.Errorf("failed to generate reset secret: %w", err)
	}

	if err := a.resets.Store(ctx, user.ID, secret, a.policy.ResetTTL); err != nil {
		a.logger.Error("Auth service: failed to persist reset token",
			"user_id", user.ID,
			"error", err.Error())
		return model.PasswordResetTicket{}, fmt.Errorf("failed to persist reset token: %w", err)
	}

	a.logger.Info("Auth service: password reset initiated",
		"user_id", user.ID)

	return model.PasswordResetTicket{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     secret,
		ExpiresAt: time.Now().Add(a.policy.ResetTTL),
	}, nil
}

// CompletePasswordReset replaces the password and logs the user out
// everywhere: all refresh tokens, all other reset tokens and all access
// sessions are invalidated.
func (a *Auth) CompletePasswordReset(ctx context.Context, req model.PasswordResetCompletion) (err error) {
	defer func() { a.recorder.RecordOutcome("complete_password_reset", outcomeOf(err)) }()

	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}

	ok, err := a.resets.Consume(ctx, req.UserID, req.Token)
	if err != nil {
		return fmt.Errorf("failed to consume reset token: %w", err)
	}
	if !ok {
		return model.ErrInvalidOrExpiredToken
	}

	user, found, err := a.users.GetByID(ctx, req.UserID)
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}
	if !found {
		return model.ErrUserNotFound
	}

	hash, err := a.hasher.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash

	if _, err := a.users.Save(ctx, user); err != nil {
		a.logger.Error("Auth service: failed to save user",
			"user_id", user.ID,
			"error", err.Error())
		return fmt.Errorf("failed to save user: %w", err)
	}

	if err := a.tokens.RevokeAll(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	if err := a.resets.InvalidateAll(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to revoke reset tokens: %w", err)
	}
	if err := a.sessions.RevokeSessions(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	a.logger.Info("Auth service: password reset completed",
		"user_id", user.ID)

	return nil
}

// Introspect resolves an access token to the identity it was issued for.
func (a *Auth) Introspect(ctx context.Context, accessToken string) (identity model.Identity, err error) {
	defer func() { a.recorder.RecordOutcome("introspect", outcomeOf(err)) }()

	claims, err := a.tokens.ParseAccessToken(accessToken)
	if err != nil {
		return model.Identity{}, model.ErrInvalidAccessToken
	}

	user, ok, err := a.users.GetByID(ctx, claims.Subject)
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !ok {
		return model.Identity{}, model.ErrInvalidAccessToken
	}

	return model.Identity{
		ID:    user.ID,
		Email: user.Email,
		Roles: user.RoleNames(),
	}, nil
}

func (a *Auth) dummy() string {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Error("Auth service: failed to prepare dummy hash",
				"error", err.Error())
			return
		}
		a.dummyHash = hash
	})
	return a.dummyHash
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(reg model.Registration) error {
	return model.NewValidationError(validation.Errors{
		"name":     validation.Validate(reg.Name, validation.Required, validation.Length(1, maxNameLength)),
		"email":    validation.Validate(reg.Email, validation.Required, is.Email),
		"password": validation.Validate(reg.Password, passwordRules()...),
	}.Filter())
}

func validatePassword(raw string) error {
	return model.NewValidationError(validation.Errors{
		"password": validation.Validate(raw, passwordRules()...),
	}.Filter())
}

func passwordRules() []validation.Rule {
	return []validation.Rule{
		validation.Required,
		validation.Length(minPasswordLength, password.MaxLength),
	}
}
