package service

import (
	"context"

	"user-admin-service/internal/domain/valueobject"
)

// UniquenessChecker answers whether a username/email is free. It must
// reflect the latest committed state visible to the current transaction;
// no caching. The store's unique indexes remain the backstop against
// concurrent registrations that both pass these checks.
type UniquenessChecker interface {
	IsUsernameUnique(ctx context.Context, username valueobject.Username) (bool, error)
	IsEmailUnique(ctx context.Context, email valueobject.Email) (bool, error)
	// Excluding variants return true when no *other* user holds the value,
	// so an update to a user's own current value passes.
	IsUsernameUniqueExcluding(ctx context.Context, username valueobject.Username, excludeUserID int64) (bool, error)
	IsEmailUniqueExcluding(ctx context.Context, email valueobject.Email, excludeUserID int64) (bool, error)
}
