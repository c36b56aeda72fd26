package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dtroode/authkeeper/internal/api/grpc/authapi"
	"github.com/dtroode/authkeeper/internal/logger"
	"github.com/dtroode/authkeeper/internal/model"
)

// AccessService defines role assignment and lookup.
type AccessService interface {
	AssignRole(ctx context.Context, userID uuid.UUID, roleName string) error
	GetUserRoles(ctx context.Context, userID uuid.UUID) ([]model.RoleView, error)
	HasRole(ctx context.Context, userID uuid.UUID, roleName string) (bool, error)
	ListRoles(ctx context.Context) ([]model.RoleView, error)
}

var _ authapi.AccessServer = (*Access)(nil)

// Access handles gRPC endpoints for role management.
type Access struct {
	authapi.UnimplementedAccessServer
	accessService  AccessService
	contextManager model.ContextManager
	adminRole      string
	logger         *logger.Logger
}

// NewAccess creates a new Access handler. Callers holding adminRole may act
// on any user.
func NewAccess(accessService AccessService, contextManager model.ContextManager, adminRole string, logger *logger.Logger) *Access {
	return &Access{
		accessService:  accessService,
		contextManager: contextManager,
		adminRole:      adminRole,
		logger:         logger,
	}
}

// AssignRole grants a role. Only admins may call it.
func (h *Access) AssignRole(ctx context.Context, req *authapi.AssignRoleRequest) (*emptypb.Empty, error) {
	callerID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	if err := h.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	userID, err := parseUserID(req.UserId)
	if err != nil {
		return nil, handleError(err)
	}

	if err := h.accessService.AssignRole(ctx, userID, req.Role); err != nil {
		h.logger.Info("Access handler: role assignment failed",
			"caller_id", callerID,
			"user_id", userID,
			"role", req.Role,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &emptypb.Empty{}, nil
}

// GetUserRoles lists a user's roles. Users may read their own roles; admins
// may read anyone's.
func (h *Access) GetUserRoles(ctx context.Context, req *authapi.GetUserRolesRequest) (*authapi.GetUserRolesResponse, error) {
	callerID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	userID := callerID
	if req.UserId != "" {
		parsed, err := parseUserID(req.UserId)
		if err != nil {
			return nil, handleError(err)
		}
		userID = parsed
	}

	if userID != callerID {
		if err := h.requireAdmin(ctx, callerID); err != nil {
			return nil, err
		}
	}

	views, err := h.accessService.GetUserRoles(ctx, userID)
	if err != nil {
		return nil, handleError(err)
	}

	return &authapi.GetUserRolesResponse{Roles: roleMessages(views)}, nil
}

// ListRoles returns the role catalog. Only admins may call it.
func (h *Access) ListRoles(ctx context.Context, _ *emptypb.Empty) (*authapi.ListRolesResponse, error) {
	callerID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	if err := h.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	views, err := h.accessService.ListRoles(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	return &authapi.ListRolesResponse{Roles: roleMessages(views)}, nil
}

func (h *Access) requireAdmin(ctx context.Context, callerID uuid.UUID) error {
	ok, err := h.accessService.HasRole(ctx, callerID, h.adminRole)
	if err != nil {
		return handleError(err)
	}
	if !ok {
		return handleError(model.ErrPermissionDenied)
	}
	return nil
}

func parseUserID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, model.NewFieldError("user_id", "must be a valid UUID")
	}
	return id, nil
}

func roleMessages(views []model.RoleView) []*authapi.Role {
	roles := make([]*authapi.Role, 0, len(views))
	for _, v := range views {
		role := &authapi.Role{
			Id:          v.ID.String(),
			Name:        v.Name,
			Permissions: make([]*authapi.Permission, 0, len(v.Permissions)),
		}
		for _, p := range v.Permissions {
			role.Permissions = append(role.Permissions, &authapi.Permission{Id: p.ID.String(), Name: p.Name})
		}
		roles = append(roles, role)
	}
	return roles
}
