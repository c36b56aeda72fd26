package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/authkeeper/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, bool, error) {
	const query = `SELECT id, name, email, password_hash, created_at, updated_at
			  FROM users WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, bool, error) {
	const query = `SELECT id, name, email, password_hash, created_at, updated_at
			  FROM users WHERE email = $1`

	return r.getOne(ctx, query, email)
}

// Save upserts the user and replaces its role set in one transaction. The
// upsert locks the user row, so concurrent saves of one user serialize.
func (r *UserRepository) Save(ctx context.Context, user model.User) (model.User, error) {
	const upsertUser = `
        INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            email = EXCLUDED.email,
            password_hash = EXCLUDED.password_hash,
            updated_at = EXCLUDED.updated_at
        RETURNING created_at, updated_at
    `
	const clearRoles = `DELETE FROM user_roles WHERE user_id = $1`
	const insertRole = `INSERT INTO user_roles (user_id, role_id, position) VALUES ($1, $2, $3)`

	now := time.Now().UTC()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, upsertUser,
			user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
		).Scan(&user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return mapWriteError("failed to save user", err)
		}

		if _, err := tx.ExecContext(ctx, clearRoles, user.ID); err != nil {
			return fmt.Errorf("failed to clear user roles: %w", err)
		}
		for i, role := range user.Roles {
			if _, err := tx.ExecContext(ctx, insertRole, user.ID, role.ID, i); err != nil {
				return mapWriteError("failed to assign user role", err)
			}
		}
		return nil
	})
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (model.User, bool, error) {
	var user model.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, false, nil
		}
		return model.User{}, false, fmt.Errorf("%w: failed to get user: %v", model.ErrStorageUnavailable, err)
	}

	roles, err := r.loadRoles(ctx, user.ID)
	if err != nil {
		return model.User{}, false, err
	}
	user.Roles = roles

	return user, true, nil
}

func (r *UserRepository) loadRoles(ctx context.Context, userID uuid.UUID) ([]model.Role, error) {
	const query = `
        SELECT r.id, r.name, p.id, p.name
        FROM user_roles ur
        JOIN roles r ON r.id = ur.role_id
        LEFT JOIN permissions p ON p.role_id = r.id
        WHERE ur.user_id = $1
        ORDER BY ur.position, p.position
    `
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load user roles: %v", model.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var roles []model.Role
	for rows.Next() {
		var (
			roleID   uuid.UUID
			roleName string
			permID   uuid.NullUUID
			permName sql.NullString
		)
		if err := rows.Scan(&roleID, &roleName, &permID, &permName); err != nil {
			return nil, fmt.Errorf("failed to scan user role: %w", err)
		}

		if len(roles) == 0 || roles[len(roles)-1].ID != roleID {
			roles = append(roles, model.Role{ID: roleID, Name: roleName})
		}
		if permID.Valid {
			last := &roles[len(roles)-1]
			last.Permissions = append(last.Permissions, model.Permission{ID: permID.UUID, Name: permName.String})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read user roles: %v", model.ErrStorageUnavailable, err)
	}

	return roles, nil
}

func mapWriteError(msg string, err error) error {
	code, constraint := pgErrorCode(err)
	switch {
	case code == uniqueViolation && constraint == "users_email_key":
		return model.ErrEmailTaken
	case code == foreignKeyViolation:
		return fmt.Errorf("%s: %w", msg, model.ErrRoleNotFound)
	case code != "":
		return fmt.Errorf("%s: %w", msg, err)
	default:
		return fmt.Errorf("%w: %s: %v", model.ErrStorageUnavailable, msg, err)
	}
}
