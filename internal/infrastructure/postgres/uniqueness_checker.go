package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"user-admin-service/internal/domain/service"
	"user-admin-service/internal/domain/valueobject"
)

// UniquenessChecker answers uniqueness questions straight from the store,
// respecting any transaction in the context so checks see in-flight writes.
// The unique indexes on users(username) and users(email) remain the
// backstop against concurrent registrations.
type UniquenessChecker struct {
	pool *pgxpool.Pool
}

func NewUniquenessChecker(pool *pgxpool.Pool) *UniquenessChecker {
	return &UniquenessChecker{pool: pool}
}

func (c *UniquenessChecker) IsUsernameUnique(ctx context.Context, username valueobject.Username) (bool, error) {
	return c.isFree(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username.Value())
}

func (c *UniquenessChecker) IsEmailUnique(ctx context.Context, email valueobject.Email) (bool, error) {
	return c.isFree(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email.Value())
}

func (c *UniquenessChecker) IsUsernameUniqueExcluding(ctx context.Context, username valueobject.Username, excludeUserID int64) (bool, error) {
	return c.holderIsSelf(ctx, `SELECT user_id FROM users WHERE username = $1`, username.Value(), excludeUserID)
}

func (c *UniquenessChecker) IsEmailUniqueExcluding(ctx context.Context, email valueobject.Email, excludeUserID int64) (bool, error) {
	return c.holderIsSelf(ctx, `SELECT user_id FROM users WHERE email = $1`, email.Value(), excludeUserID)
}

func (c *UniquenessChecker) isFree(ctx context.Context, sql string, value string) (bool, error) {
	q := querierFrom(ctx, c.pool)
	var exists bool
	if err := q.QueryRow(ctx, sql, value).Scan(&exists); err != nil {
		return false, err
	}
	return !exists, nil
}

// holderIsSelf: unique if no one holds the value, or the holder is the
// excluded user itself.
func (c *UniquenessChecker) holderIsSelf(ctx context.Context, sql string, value string, excludeUserID int64) (bool, error) {
	q := querierFrom(ctx, c.pool)
	var holderID int64
	err := q.QueryRow(ctx, sql, value).Scan(&holderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return holderID == excludeUserID, nil
}

var _ service.UniquenessChecker = (*UniquenessChecker)(nil)
