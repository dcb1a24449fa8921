package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"user-admin-service/internal/domain/entity"
	"user-admin-service/internal/domain/repository"
)

type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

func (r *RoleRepository) FindByNames(ctx context.Context, names []string) ([]entity.Role, error) {
	if len(names) == 0 {
		return nil, nil
	}
	q := querierFrom(ctx, r.pool)
	rows, err := q.Query(ctx, `
		SELECT role_id, role_name, COALESCE(description, '')
		FROM roles
		WHERE role_name = ANY($1)
		ORDER BY role_name
	`, names)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var roles []entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

var _ repository.RoleRepository = (*RoleRepository)(nil)
