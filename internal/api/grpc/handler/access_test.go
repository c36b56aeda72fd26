package handler

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dtroode/authkeeper/internal/api/grpc/authapi"
	"github.com/dtroode/authkeeper/internal/mocks"
	"github.com/dtroode/authkeeper/internal/model"
	"github.com/dtroode/authkeeper/internal/testutil"
)

func newAccessHandler(t *testing.T, caller uuid.UUID) (*Access, *mocks.AccessService) {
	svc := mocks.NewAccessService(t)
	cm := mocks.NewContextManager(t)
	cm.On("GetUserIDFromContext", mock.Anything).Return(caller, caller != uuid.Nil)
	return NewAccess(svc, cm, "admin", testutil.MakeNoopLogger()), svc
}

func TestAccess_AssignRole(t *testing.T) {
	t.Parallel()

	caller, target := uuid.New(), uuid.New()

	t.Run("admin", func(t *testing.T) {
		h, svc := newAccessHandler(t, caller)
		svc.On("HasRole", mock.Anything, caller, "admin").Return(true, nil).Once()
		svc.On("AssignRole", mock.Anything, target, "admin").Return(nil).Once()

		_, err := h.AssignRole(context.Background(), &authapi.AssignRoleRequest{UserId: target.String(), Role: "admin"})
		require.NoError(t, err)
	})

	t.Run("not an admin", func(t *testing.T) {
		h, svc := newAccessHandler(t, caller)
		svc.On("HasRole", mock.Anything, caller, "admin").Return(false, nil).Once()

		_, err := h.AssignRole(context.Background(), &authapi.AssignRoleRequest{UserId: target.String(), Role: "admin"})
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("bad user id", func(t *testing.T) {
		h, svc := newAccessHandler(t, caller)
		svc.On("HasRole", mock.Anything, caller, "admin").Return(true, nil).Once()

		_, err := h.AssignRole(context.Background(), &authapi.AssignRoleRequest{UserId: "42", Role: "admin"})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("unknown role", func(t *testing.T) {
		h, svc := newAccessHandler(t, caller)
		svc.On("HasRole", mock.Anything, caller, "admin").Return(true, nil).Once()
		svc.On("AssignRole", mock.Anything, target, "ghost").Return(model.ErrRoleNotFound).Once()

		_, err := h.AssignRole(context.Background(), &authapi.AssignRoleRequest{UserId: target.String(), Role: "ghost"})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h, _ := newAccessHandler(t, uuid.Nil)

		_, err := h.AssignRole(context.Background(), &authapi.AssignRoleRequest{UserId: target.String(), Role: "admin"})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}

func TestAccess_GetUserRoles(t *testing.T) {
	t.Parallel()

	caller, other := uuid.New(), uuid.New()
	roleID, permID := uuid.New(), uuid.New()
	views := []model.RoleView{{
		ID:          roleID,
		Name:        "user",
		Permissions: []model.PermissionView{{ID: permID, Name: "profile:read"}},
	}}

	t.Run("own roles", func(t *testing.T) {
		h, svc := newAccessHandler(t, caller)
		svc.On("GetUserRoles", mock.Anything, caller).Return(views, nil).Once()

		out, err := h.GetUserRoles(context.Background(), &authapi.GetUserRolesRequest{})
		require.NoError(t, err)
		require.Len(t, out.GetRoles(), 1)
		role := out.GetRoles()[0]
		assert.Equal(t, roleID.String(), role.GetId())
		assert.Equal(t, "user", role.GetName())
		require.Len(t, role.GetPermissions(), 1)
		assert.Equal(t, permID.String(), role.GetPermissions()[0].GetId())
		assert.Equal(t, "profile:read", role.GetPermissions()[0].GetName())
	})

	t.Run("someone else as non-admin", func(t *testing.T) {
		h, svc := newAccessHandler(t, caller)
		svc.On("HasRole", mock.Anything, caller, "admin").Return(false, nil).Once()

		_, err := h.GetUserRoles(context.Background(), &authapi.GetUserRolesRequest{UserId: other.String()})
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("someone else as admin", func(t *testing.T) {
		h, svc := newAccessHandler(t, caller)
		svc.On("HasRole", mock.Anything, caller, "admin").Return(true, nil).Once()
		svc.On("GetUserRoles", mock.Anything, other).Return(nil, model.ErrUserNotFound).Once()

		_, err := h.GetUserRoles(context.Background(), &authapi.GetUserRolesRequest{UserId: other.String()})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}

func TestAccess_ListRoles(t *testing.T) {
	t.Parallel()

	caller := uuid.New()
	views := []model.RoleView{
		{ID: uuid.New(), Name: "admin", Permissions: []model.PermissionView{{ID: uuid.New(), Name: "roles:read"}}},
		{ID: uuid.New(), Name: "user", Permissions: []model.PermissionView{}},
	}

	t.Run("admin", func(t *testing.T) {
		h, svc := newAccessHandler(t, caller)
		svc.On("HasRole", mock.Anything, caller, "admin").Return(true, nil).Once()
		svc.On("ListRoles", mock.Anything).Return(views, nil).Once()

		out, err := h.ListRoles(context.Background(), &emptypb.Empty{})
		require.NoError(t, err)
		require.Len(t, out.GetRoles(), 2)
		assert.Equal(t, "admin", out.GetRoles()[0].GetName())
		assert.Equal(t, "roles:read", out.GetRoles()[0].GetPermissions()[0].GetName())
		assert.Equal(t, views[1].ID.String(), out.GetRoles()[1].GetId())
		assert.Empty(t, out.GetRoles()[1].GetPermissions())
	})

	t.Run("not an admin", func(t *testing.T) {
		h, svc := newAccessHandler(t, caller)
		svc.On("HasRole", mock.Anything, caller, "admin").Return(false, nil).Once()

		_, err := h.ListRoles(context.Background(), &emptypb.Empty{})
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("storage fault", func(t *testing.T) {
		h, svc := newAccessHandler(t, caller)
		svc.On("HasRole", mock.Anything, caller, "admin").Return(true, nil).Once()
		svc.On("ListRoles", mock.Anything).Return(nil, model.ErrStorageUnavailable).Once()

		_, err := h.ListRoles(context.Background(), &emptypb.Empty{})
		assert.Equal(t, codes.Unavailable, status.Code(err))
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h, _ := newAccessHandler(t, uuid.Nil)

		_, err := h.ListRoles(context.Background(), &emptypb.Empty{})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}
