package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/authkeeper/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// userRecord keeps role references by id so role edits show up on read.
type userRecord struct {
	user    model.User
	roleIDs []uuid.UUID
}

type UserRepository struct {
	mu      sync.RWMutex
	roles   *RoleRepository
	byID    map[uuid.UUID]userRecord
	byEmail map[string]uuid.UUID
	now     func() time.Time
}

func NewUserRepository(roles *RoleRepository) *UserRepository {
	return &UserRepository{
		roles:   roles,
		byID:    make(map[uuid.UUID]userRecord),
		byEmail: make(map[string]uuid.UUID),
		now:     time.Now,
	}
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (model.User, bool, error) {
	r.mu.RLock()
	rec, ok := r.byID[id]
	r.mu.RUnlock()
	if !ok {
		return model.User{}, false, nil
	}
	return r.hydrate(rec)
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (model.User, bool, error) {
	r.mu.RLock()
	id, ok := r.byEmail[email]
	rec := r.byID[id]
	r.mu.RUnlock()
	if !ok {
		return model.User{}, false, nil
	}
	return r.hydrate(rec)
}

func (r *UserRepository) Save(_ context.Context, user model.User) (model.User, error) {
	roleIDs := make([]uuid.UUID, 0, len(user.Roles))
	for _, role := range user.Roles {
		roleIDs = append(roleIDs, role.ID)
	}
	if _, ok := r.roles.byIDs(roleIDs); !ok {
		return model.User{}, model.ErrRoleNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if id, ok := r.byEmail[user.Email]; ok && id != user.ID {
		return model.User{}, model.ErrEmailTaken
	}

	now := r.now().UTC()
	if old, ok := r.byID[user.ID]; ok {
		user.CreatedAt = old.user.CreatedAt
		delete(r.byEmail, old.user.Email)
	} else if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	stored := user
	stored.Roles = nil
	r.byID[user.ID] = userRecord{user: stored, roleIDs: roleIDs}
	r.byEmail[user.Email] = user.ID

	user.Roles = append([]model.Role(nil), user.Roles...)
	return user, nil
}

func (r *UserRepository) hydrate(rec userRecord) (model.User, bool, error) {
	user := rec.user
	roles, ok := r.roles.byIDs(rec.roleIDs)
	if !ok {
		return model.User{}, false, model.ErrRoleNotFound
	}
	if len(roles) > 0 {
		user.Roles = roles
	}
	return user, true, nil
}
