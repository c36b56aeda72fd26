package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/authkeeper/internal/model"
)

var _ model.RoleStore = (*RoleRepository)(nil)

type RoleRepository struct {
	db *Connection
}

func NewRoleRepository(db *Connection) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (model.Role, bool, error) {
	const query = `SELECT id, name FROM roles WHERE name = $1`

	var role model.Role
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&role.ID, &role.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Role{}, false, nil
		}
		return model.Role{}, false, fmt.Errorf("%w: failed to get role by name: %v", model.ErrStorageUnavailable, err)
	}

	perms, err := r.permissions(ctx, role.ID)
	if err != nil {
		return model.Role{}, false, err
	}
	role.Permissions = perms

	return role, true, nil
}

func (r *RoleRepository) List(ctx context.Context) ([]model.Role, error) {
	const query = `
        SELECT r.id, r.name, p.id, p.name
        FROM roles r
        LEFT JOIN permissions p ON p.role_id = r.id
        ORDER BY r.name, p.position
    `
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list roles: %v", model.ErrStorageUnavailable, err)
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
			return nil, fmt.Errorf("failed to scan role: %w", err)
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
		return nil, fmt.Errorf("%w: failed to read roles: %v", model.ErrStorageUnavailable, err)
	}

	return roles, nil
}

func (r *RoleRepository) permissions(ctx context.Context, roleID uuid.UUID) ([]model.Permission, error) {
	const query = `SELECT id, name FROM permissions WHERE role_id = $1 ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query, roleID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load permissions: %v", model.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var perms []model.Permission
	for rows.Next() {
		var p model.Permission
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		perms = append(perms, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read permissions: %v", model.ErrStorageUnavailable, err)
	}

	return perms, nil
}
