package repository

import (
	"context"
	"errors"
	"time"

	"user-admin-service/internal/domain/entity"
)

// ErrNotFound is returned by lookups when no row matches.
var ErrNotFound = errors.New("not found")

// UserRepository defines persistence operations for the User aggregate.
// Create assigns the identity and audit timestamps on the passed aggregate.
// Implementations must honor a transaction carried in the context.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id int64) error
	RecordLogin(ctx context.Context, id int64, at time.Time) error
	SetAvatarURL(ctx context.Context, id int64, url string) error
}

// RoleRepository reads roles; roles are managed as seed data.
type RoleRepository interface {
	FindByNames(ctx context.Context, names []string) ([]entity.Role, error)
}

// AuditEventRepository appends audit trail rows. Rows are never updated
// or deleted by this service.
type AuditEventRepository interface {
	Save(ctx context.Context, ev *entity.AuditEvent) error
}

// TxManager runs fn inside a single store transaction. The transaction is
// carried through the context so repositories used inside fn share it;
// fn returning an error rolls everything back.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
