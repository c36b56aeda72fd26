package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore is the user half of the directory. Lookups report absence through
// the boolean; the error is reserved for storage faults.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	// Save inserts or fully replaces the user, including its role set.
	Save(ctx context.Context, user User) (User, error)
}

// RoleStore is the role half of the directory.
type RoleStore interface {
	GetByName(ctx context.Context, name string) (Role, bool, error)
	List(ctx context.Context) ([]Role, error)
}

// User is an identity record. Roles are references resolved by the directory.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Roles        []Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the user holds a role with exactly this name.
func (u User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// RoleNames returns role names in assignment order.
func (u User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// Role is a named permission bundle.
type Role struct {
	ID          uuid.UUID
	Name        string
	Permissions []Permission
}

// Permission is a named capability owned by one role.
type Permission struct {
	ID   uuid.UUID
	Name string
}

// RoleView is the read projection returned by GetUserRoles and ListRoles.
type RoleView struct {
	ID          uuid.UUID
	Name        string
	Permissions []PermissionView
}

// PermissionView is a permission inside a RoleView.
type PermissionView struct {
	ID   uuid.UUID
	Name string
}

// Identity is the introspection result for a valid access token.
type Identity struct {
	ID    uuid.UUID
	Email string
	Roles []string
}
