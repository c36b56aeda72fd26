// Package memory keeps the user and role directory in process memory.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/authkeeper/internal/model"
)

var _ model.RoleStore = (*RoleRepository)(nil)

// DefaultRoles mirrors the roles seeded by the database migrations.
func DefaultRoles() []model.Role {
	return []model.Role{
		{
			ID:   uuid.MustParse("00000000-0000-4000-8000-000000000001"),
			Name: "user",
			Permissions: []model.Permission{
				{ID: uuid.MustParse("00000000-0000-4000-8000-000000000101"), Name: "profile:read"},
				{ID: uuid.MustParse("00000000-0000-4000-8000-000000000102"), Name: "profile:update"},
			},
		},
		{
			ID:   uuid.MustParse("00000000-0000-4000-8000-000000000002"),
			Name: "admin",
			Permissions: []model.Permission{
				{ID: uuid.MustParse("00000000-0000-4000-8000-000000000201"), Name: "users:read"},
				{ID: uuid.MustParse("00000000-0000-4000-8000-000000000202"), Name: "roles:read"},
				{ID: uuid.MustParse("00000000-0000-4000-8000-000000000203"), Name: "roles:assign"},
			},
		},
	}
}

type RoleRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]model.Role
	byName map[string]uuid.UUID
}

// NewRoleRepository returns a repository holding the given roles.
func NewRoleRepository(roles ...model.Role) *RoleRepository {
	r := &RoleRepository{
		byID:   make(map[uuid.UUID]model.Role),
		byName: make(map[string]uuid.UUID),
	}
	for _, role := range roles {
		r.put(role)
	}
	return r
}

func (r *RoleRepository) GetByName(_ context.Context, name string) (model.Role, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return model.Role{}, false, nil
	}
	return cloneRole(r.byID[id]), true, nil
}

func (r *RoleRepository) List(_ context.Context) ([]model.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roles := make([]model.Role, 0, len(r.byID))
	for _, role := range r.byID {
		roles = append(roles, cloneRole(role))
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })
	return roles, nil
}

func (r *RoleRepository) byIDs(ids []uuid.UUID) ([]model.Role, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roles := make([]model.Role, 0, len(ids))
	for _, id := range ids {
		role, ok := r.byID[id]
		if !ok {
			return nil, false
		}
		roles = append(roles, cloneRole(role))
	}
	return roles, true
}

func (r *RoleRepository) put(role model.Role) {
	if old, ok := r.byID[role.ID]; ok {
		delete(r.byName, old.Name)
	}
	role = cloneRole(role)
	r.byID[role.ID] = role
	r.byName[role.Name] = role.ID
}

func cloneRole(role model.Role) model.Role {
	if role.Permissions != nil {
		role.Permissions = append([]model.Permission(nil), role.Permissions...)
	}
	return role
}
