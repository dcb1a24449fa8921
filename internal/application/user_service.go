package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"user-admin-service/internal/domain/entity"
	"user-admin-service/internal/domain/repository"
	domainsvc "user-admin-service/internal/domain/service"
	"user-admin-service/internal/domain/valueobject"
	"user-admin-service/pkg/helpers"
)

// Actor identifies the administrator performing a use case, plus the
// request metadata recorded alongside audit rows.
type Actor struct {
	ID        int64
	IP        string
	UserAgent string
}

// UserService is the orchestration boundary for the user lifecycle.
// Each use case runs as one transaction: aggregate mutation, persistence,
// and the audit record commit or roll back together. Search indexing and
// admin notifications happen after commit, best-effort.
type UserService struct {
	Users     repository.UserRepository
	Domain    *domainsvc.UserDomainService
	Roles     *RoleService
	Audit     *AuditService
	Tx        repository.TxManager
	Logger    *logrus.Logger
	Search    *SearchIndex
	Notifier  *AuditNotifier
	GCS       *storage.Client
	GCSBucket string
}

func NewUserService(users repository.UserRepository, domain *domainsvc.UserDomainService, roles *RoleService, audit *AuditService, tx repository.TxManager, logger *logrus.Logger) *UserService {
	return &UserService{
		Users:  users,
		Domain: domain,
		Roles:  roles,
		Audit:  audit,
		Tx:     tx,
		Logger: logger,
	}
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	RoleNames []string
}

type RegistrationResult struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registrationDate"`
	RoleNames        []string  `json:"roleNames"`
}

type UpdateInput struct {
	Username  string
	Email     string
	RoleNames []string
}

type UpdateResult struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registrationDate"`
	LastUpdated      time.Time `json:"lastUpdated"`
	RoleNames        []string  `json:"roleNames"`
}

// Register creates a new user and its USER_CREATED audit record.
func (s *UserService) Register(ctx context.Context, in RegisterInput, actor Actor) (*RegistrationResult, error) {
	username, err := valueobject.NewUsername(in.Username)
	if err != nil {
		return nil, err
	}
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	password, err := valueobject.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}
	if len(in.RoleNames) == 0 {
		return nil, ErrMissingRoles
	}
	roles, err := s.Roles.FindRolesByNames(ctx, in.RoleNames)
	if err != nil {
		return nil, err
	}

	var created *entity.User
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.Domain.CreateUser(ctx, username, email, password, roles, actor.ID)
		if err != nil {
			return err
		}
		if err := s.Users.Create(ctx, u); err != nil {
			return err
		}
		ev := s.Domain.UserCreatedEvent(u, actor.ID)
		if err := s.Audit.RecordCreated(ctx, ev, actor); err != nil {
			return err
		}
		created = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, created, entity.AuditUserCreated, actor)

	return &RegistrationResult{
		ID:               created.ID,
		Username:         created.Username,
		Email:            created.Email,
		RegistrationDate: created.RegistrationDate,
		RoleNames:        created.RoleNames(),
	}, nil
}

// Update replaces the user's username, email, and role set, recording a
// USER_UPDATED audit row with before/after values.
func (s *UserService) Update(ctx context.Context, userID int64, in UpdateInput, actor Actor) (*UpdateResult, error) {
	username, err := valueobject.NewUsername(in.Username)
	if err != nil {
		return nil, err
	}
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if len(in.RoleNames) == 0 {
		return nil, ErrMissingRoles
	}
	roles, err := s.Roles.FindRolesByNames(ctx, in.RoleNames)
	if err != nil {
		return nil, err
	}

	var updated entity.User
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.Users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: %d", ErrUserNotFound, userID)
			}
			return err
		}
		u, ev, err := s.Domain.UpdateUser(ctx, *existing, username, email, roles, actor.ID)
		if err != nil {
			return err
		}
		if err := s.Users.Update(ctx, &u); err != nil {
			return err
		}
		if err := s.Audit.RecordUpdated(ctx, ev, actor); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, &updated, entity.AuditUserUpdated, actor)

	return &UpdateResult{
		ID:               updated.ID,
		Username:         updated.Username,
		Email:            updated.Email,
		RegistrationDate: updated.RegistrationDate,
		LastUpdated:      updated.UpdatedAt,
		RoleNames:        updated.RoleNames(),
	}, nil
}

// Delete removes the user and records a USER_DELETED audit row carrying the
// pre-deletion username/email. The audit row survives the user.
func (s *UserService) Delete(ctx context.Context, userID int64, actor Actor) error {
	var deleted entity.User
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.Users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: %d", ErrUserNotFound, userID)
			}
			return err
		}
		ev := s.Domain.UserDeletedEvent(u, actor.ID)
		if err := s.Users.Delete(ctx, u.ID); err != nil {
			return err
		}
		if err := s.Audit.RecordDeleted(ctx, ev, actor); err != nil {
			return err
		}
		deleted = *u
		return nil
	})
	if err != nil {
		return err
	}

	s.afterCommit(ctx, &deleted, entity.AuditUserDeleted, actor)
	return nil
}

// GetUser fetches a user by id for the admin detail view.
func (s *UserService) GetUser(ctx context.Context, userID int64) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrUserNotFound, userID)
		}
		return nil, err
	}
	return u, nil
}

// UploadAvatar stores a profile image in GCS and saves its public URL.
// Profile self-service, not an administrative action; no audit row.
func (s *UserService) UploadAvatar(ctx context.Context, userID int64, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", fmt.Errorf("avatar storage not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", fmt.Sprintf("%d", u.ID), uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	if err := s.Users.SetAvatarURL(ctx, u.ID, url); err != nil {
		return "", err
	}
	u.AvatarURL = url
	if s.Search != nil {
		_ = s.Search.IndexUser(ctx, u)
	}
	return url, nil
}

// afterCommit maintains the search index and queues an admin notification.
// Failures here are logged and dropped; the transaction has already
// committed.
func (s *UserService) afterCommit(ctx context.Context, u *entity.User, action entity.AuditAction, actor Actor) {
	if s.Search != nil {
		var err error
		if action == entity.AuditUserDeleted {
			err = s.Search.RemoveUser(ctx, u.ID)
		} else {
			err = s.Search.IndexUser(ctx, u)
		}
		if err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("search index update failed")
		}
	}
	if s.Notifier != nil {
		if err := s.Notifier.Publish(ctx, action, actor.ID, u); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("audit notification publish failed")
		}
	}
}
