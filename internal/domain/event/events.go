// Package event defines immutable domain events describing user lifecycle
// changes. Events embed value-object snapshots, not live references, so
// they stay valid after the aggregate is mutated or deleted. They are
// consumed once by the audit pipeline and then discarded.
package event

import (
	"time"

	"user-admin-service/internal/domain/valueobject"
)

// UserCreated is emitted after a new user has been persisted and has a
// real identity.
type UserCreated struct {
	UserID     int64
	CreatedBy  int64
	Username   valueobject.Username
	Email      valueobject.Email
	RoleNames  []string
	OccurredAt time.Time
}

// UserUpdated snapshots old vs. new values of an update.
type UserUpdated struct {
	UserID       int64
	UpdatedBy    int64
	OldUsername  valueobject.Username
	NewUsername  valueobject.Username
	OldEmail     valueobject.Email
	NewEmail     valueobject.Email
	OldRoleNames []string
	NewRoleNames []string
	OccurredAt   time.Time
}

// UserDeleted snapshots the user before removal from the store.
type UserDeleted struct {
	UserID     int64
	DeletedBy  int64
	Username   valueobject.Username
	Email      valueobject.Email
	OccurredAt time.Time
}
