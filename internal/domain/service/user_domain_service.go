package service

import (
	"context"
	"fmt"
	"time"

	"user-admin-service/internal/domain/entity"
	"user-admin-service/internal/domain/event"
	"user-admin-service/internal/domain/valueobject"
)

// PasswordHasher is the one-way hashing collaborator (bcrypt in production).
type PasswordHasher interface {
	Hash(raw string) (string, error)
}

// UserDomainService is the sole authority for mutating the User aggregate
// and producing the matching domain events. It does not persist anything;
// the application service owns the transactional sequence.
type UserDomainService struct {
	unique UniquenessChecker
	hasher PasswordHasher
}

func NewUserDomainService(unique UniquenessChecker, hasher PasswordHasher) *UserDomainService {
	return &UserDomainService{unique: unique, hasher: hasher}
}

// CreateUser validates uniqueness, hashes the password, and returns the
// in-memory aggregate. Identity is assigned later by the store.
func (s *UserDomainService) CreateUser(ctx context.Context, username valueobject.Username, email valueobject.Email, password valueobject.Password, roles []entity.Role, actorID int64) (*entity.User, error) {
	if err := s.checkUnique(ctx, username, email); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(password.Raw())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHashing, err)
	}
	now := time.Now()
	u := &entity.User{
		Username:         username.Value(),
		Email:            email.Value(),
		PasswordHash:     hash,
		RegistrationDate: now,
		Roles:            roles,
		AuditMeta: entity.AuditMeta{
			CreatedBy: actorID,
			UpdatedBy: actorID,
		},
	}
	return u, nil
}

// UserCreatedEvent snapshots a freshly persisted user. Call only after the
// store has assigned the user's identity.
func (s *UserDomainService) UserCreatedEvent(u *entity.User, actorID int64) event.UserCreated {
	return event.UserCreated{
		UserID:     u.ID,
		CreatedBy:  actorID,
		Username:   mustUsername(u.Username),
		Email:      mustEmail(u.Email),
		RoleNames:  u.RoleNames(),
		OccurredAt: time.Now(),
	}
}

// UpdateUser validates uniqueness against every user except the target,
// then returns an updated copy of the aggregate together with an event
// snapshotting old vs. new values. The caller persists the returned value;
// the passed aggregate is left untouched.
func (s *UserDomainService) UpdateUser(ctx context.Context, existing entity.User, newUsername valueobject.Username, newEmail valueobject.Email, newRoles []entity.Role, actorID int64) (entity.User, event.UserUpdated, error) {
	if err := s.checkUniqueExcluding(ctx, existing.ID, newUsername, newEmail); err != nil {
		return entity.User{}, event.UserUpdated{}, err
	}

	oldUsername := mustUsername(existing.Username)
	oldEmail := mustEmail(existing.Email)
	oldRoleNames := existing.RoleNames()

	updated := existing
	updated.Username = newUsername.Value()
	updated.Email = newEmail.Value()
	updated.Roles = newRoles
	updated.UpdatedBy = actorID

	ev := event.UserUpdated{
		UserID:       existing.ID,
		UpdatedBy:    actorID,
		OldUsername:  oldUsername,
		NewUsername:  newUsername,
		OldEmail:     oldEmail,
		NewEmail:     newEmail,
		OldRoleNames: oldRoleNames,
		NewRoleNames: updated.RoleNames(),
		OccurredAt:   time.Now(),
	}
	return updated, ev, nil
}

// UserDeletedEvent snapshots a user about to be removed. Call before the
// delete so username/email are still readable.
func (s *UserDomainService) UserDeletedEvent(u *entity.User, actorID int64) event.UserDeleted {
	return event.UserDeleted{
		UserID:     u.ID,
		DeletedBy:  actorID,
		Username:   mustUsername(u.Username),
		Email:      mustEmail(u.Email),
		OccurredAt: time.Now(),
	}
}

// Username before email; the first violation wins.
func (s *UserDomainService) checkUnique(ctx context.Context, username valueobject.Username, email valueobject.Email) error {
	ok, err := s.unique.IsUsernameUnique(ctx, username)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrDuplicateUsername, username)
	}
	ok, err = s.unique.IsEmailUnique(ctx, email)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
	}
	return nil
}

func (s *UserDomainService) checkUniqueExcluding(ctx context.Context, userID int64, username valueobject.Username, email valueobject.Email) error {
	ok, err := s.unique.IsUsernameUniqueExcluding(ctx, username, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrDuplicateUsername, username)
	}
	ok, err = s.unique.IsEmailUniqueExcluding(ctx, email, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
	}
	return nil
}

// Persisted values were validated at construction time, so re-wrapping
// them cannot fail.
func mustUsername(v string) valueobject.Username {
	u, err := valueobject.NewUsername(v)
	if err != nil {
		panic(err)
	}
	return u
}

func mustEmail(v string) valueobject.Email {
	e, err := valueobject.NewEmail(v)
	if err != nil {
		panic(err)
	}
	return e
}
