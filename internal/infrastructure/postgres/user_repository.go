package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"user-admin-service/internal/domain/entity"
	"user-admin-service/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `user_id, username, email, password, registration_date, last_login, avatar_url,
	created_by, created_at, updated_by, updated_at`

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	q := querierFrom(ctx, r.pool)
	row := q.QueryRow(ctx, `
		INSERT INTO users (username, email, password, registration_date, avatar_url, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING user_id, created_at, updated_at
	`, u.Username, u.Email, u.PasswordHash, u.RegistrationDate, u.AvatarURL, u.CreatedBy, u.UpdatedBy)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return err
	}
	return r.replaceRoles(ctx, q, u.ID, u.Roles)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getBy(ctx, `WHERE user_id = $1`, id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getBy(ctx, `WHERE username = $1`, username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getBy(ctx, `WHERE email = $1`, email)
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg any) (*entity.User, error) {
	q := querierFrom(ctx, r.pool)
	u := &entity.User{}
	var lastLogin *time.Time
	row := q.QueryRow(ctx, `SELECT `+userColumns+` FROM users `+where, arg)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.RegistrationDate,
		&lastLogin, &u.AvatarURL, &u.CreatedBy, &u.CreatedAt, &u.UpdatedBy, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	u.LastLogin = lastLogin
	roles, err := r.loadRoles(ctx, q, u.ID)
	if err != nil {
		return nil, err
	}
	u.Roles = roles
	return u, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email)
}

func (r *UserRepository) exists(ctx context.Context, sql string, arg any) (bool, error) {
	q := querierFrom(ctx, r.pool)
	var ok bool
	if err := q.QueryRow(ctx, sql, arg).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	q := querierFrom(ctx, r.pool)
	u.UpdatedAt = time.Now()
	res, err := q.Exec(ctx, `
		UPDATE users
		SET username = $1, email = $2, updated_by = $3, updated_at = $4
		WHERE user_id = $5
	`, u.Username, u.Email, u.UpdatedBy, u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return r.replaceRoles(ctx, q, u.ID, u.Roles)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	q := querierFrom(ctx, r.pool)
	// user_roles rows go with the user via ON DELETE CASCADE;
	// audit rows reference the id logically and stay.
	res, err := q.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) RecordLogin(ctx context.Context, id int64, at time.Time) error {
	q := querierFrom(ctx, r.pool)
	_, err := q.Exec(ctx, `UPDATE users SET last_login = $1 WHERE user_id = $2`, at, id)
	return err
}

func (r *UserRepository) SetAvatarURL(ctx context.Context, id int64, url string) error {
	q := querierFrom(ctx, r.pool)
	res, err := q.Exec(ctx, `UPDATE users SET avatar_url = $1 WHERE user_id = $2`, url, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) loadRoles(ctx context.Context, q Querier, userID int64) ([]entity.Role, error) {
	rows, err := q.Query(ctx, `
		SELECT r.role_id, r.role_name, COALESCE(r.description, '')
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.role_id
		WHERE ur.user_id = $1
		ORDER BY r.role_name
	`, userID)
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

func (r *UserRepository) replaceRoles(ctx context.Context, q Querier, userID int64, roles []entity.Role) error {
	if _, err := q.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, userID); err != nil {
		return err
	}
	for _, role := range roles {
		if _, err := q.Exec(ctx, `
			INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)
			ON CONFLICT (user_id, role_id) DO NOTHING
		`, userID, role.ID); err != nil {
			return err
		}
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
