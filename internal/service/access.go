package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/authkeeper/internal/logger"
	"github.com/dtroode/authkeeper/internal/model"
)

const userLockStripes = 64

// Access implements role assignment and role listing.
type Access struct {
	users    model.UserStore
	roles    model.RoleStore
	recorder OutcomeRecorder
	logger   *logger.Logger

	// locks serializes read-modify-write of a user's role set within this
	// process.
	locks [userLockStripes]sync.Mutex
}

// AccessOption configures Access.
type AccessOption func(*Access)

// WithAccessRecorder sets the recorder for operation outcomes.
func WithAccessRecorder(r OutcomeRecorder) AccessOption {
	return func(a *Access) { a.recorder = r }
}

func NewAccess(users model.UserStore, roles model.RoleStore, logger *logger.Logger, opts ...AccessOption) *Access {
	a := &Access{
		users:    users,
		roles:    roles,
		recorder: noopRecorder{},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AssignRole appends the named role to the user. Assigning a role the user
// already holds is a no-op.
func (a *Access) AssignRole(ctx context.Context, userID uuid.UUID, roleName string) (err error) {
	defer func() { a.recorder.RecordOutcome("assign_role", outcomeOf(err)) }()

	mu := a.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	user, ok, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}
	if !ok {
		return model.ErrUserNotFound
	}

	if user.HasRole(roleName) {
		a.logger.Debug("Access service: role already assigned",
			"user_id", userID,
			"role", roleName)
		return nil
	}

	role, ok, err := a.roles.GetByName(ctx, roleName)
	if err != nil {
		return fmt.Errorf("failed to get role by name: %w", err)
	}
	if !ok {
		return model.ErrRoleNotFound
	}

	user.Roles = append(user.Roles, role)
	if _, err := a.users.Save(ctx, user); err != nil {
		a.logger.Error("Access service: failed to save user roles",
			"user_id", userID,
			"role", roleName,
			"error", err.Error())
		return fmt.Errorf("failed to save user: %w", err)
	}

	a.logger.Info("Access service: role assigned",
		"user_id", userID,
		"role", roleName)

	return nil
}

// GetUserRoles projects the user's roles in assignment order.
func (a *Access) GetUserRoles(ctx context.Context, userID uuid.UUID) (views []model.RoleView, err error) {
	defer func() { a.recorder.RecordOutcome("get_user_roles", outcomeOf(err)) }()

	user, ok, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !ok {
		return nil, model.ErrUserNotFound
	}

	return roleViews(user.Roles), nil
}

// ListRoles projects every known role, ordered by name.
func (a *Access) ListRoles(ctx context.Context) (views []model.RoleView, err error) {
	defer func() { a.recorder.RecordOutcome("list_roles", outcomeOf(err)) }()

	roles, err := a.roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	return roleViews(roles), nil
}

// HasRole reports whether the user holds the named role. Unknown users hold
// no roles.
func (a *Access) HasRole(ctx context.Context, userID uuid.UUID, roleName string) (bool, error) {
	user, ok, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to get user by id: %w", err)
	}
	return ok && user.HasRole(roleName), nil
}

func (a *Access) lockFor(userID uuid.UUID) *sync.Mutex {
	var h uint32
	for _, b := range userID {
		h = h*31 + uint32(b)
	}
	return &a.locks[h%userLockStripes]
}

func roleViews(roles []model.Role) []model.RoleView {
	views := make([]model.RoleView, 0, len(roles))
	for _, role := range roles {
		view := model.RoleView{
			ID:          role.ID,
			Name:        role.Name,
			Permissions: make([]model.PermissionView, 0, len(role.Permissions)),
		}
		for _, p := range role.Permissions {
			view.Permissions = append(view.Permissions, model.PermissionView{ID: p.ID, Name: p.Name})
		}
		views = append(views, view)
	}
	return views
}
