package application

import (
	"context"
	"fmt"

	"user-admin-service/internal/domain/entity"
	"user-admin-service/internal/domain/event"
	"user-admin-service/internal/domain/repository"
)

// AuditService translates domain events into append-only audit records.
// Every write happens inside the caller's transaction; a failed write is
// fatal to the whole use case.
type AuditService struct {
	Repo repository.AuditEventRepository
}

func NewAuditService(repo repository.AuditEventRepository) *AuditService {
	return &AuditService{Repo: repo}
}

func (s *AuditService) RecordCreated(ctx context.Context, ev event.UserCreated, actor Actor) error {
	return s.save(ctx, &entity.AuditEvent{
		UserID:       ev.CreatedBy,
		Action:       entity.AuditUserCreated,
		TargetUserID: ev.UserID,
		IPAddress:    actor.IP,
		UserAgent:    actor.UserAgent,
		Details: entity.CreatedDetails{
			Username: ev.Username.Value(),
			Email:    ev.Email.Value(),
			Roles:    ev.RoleNames,
		},
	})
}

func (s *AuditService) RecordUpdated(ctx context.Context, ev event.UserUpdated, actor Actor) error {
	return s.save(ctx, &entity.AuditEvent{
		UserID:       ev.UpdatedBy,
		Action:       entity.AuditUserUpdated,
		TargetUserID: ev.UserID,
		IPAddress:    actor.IP,
		UserAgent:    actor.UserAgent,
		Details: entity.UpdatedDetails{
			OldUsername: ev.OldUsername.Value(),
			NewUsername: ev.NewUsername.Value(),
			OldEmail:    ev.OldEmail.Value(),
			NewEmail:    ev.NewEmail.Value(),
			OldRoles:    ev.OldRoleNames,
			NewRoles:    ev.NewRoleNames,
		},
	})
}

func (s *AuditService) RecordDeleted(ctx context.Context, ev event.UserDeleted, actor Actor) error {
	return s.save(ctx, &entity.AuditEvent{
		UserID:       ev.DeletedBy,
		Action:       entity.AuditUserDeleted,
		TargetUserID: ev.UserID,
		IPAddress:    actor.IP,
		UserAgent:    actor.UserAgent,
		Details: entity.DeletedDetails{
			Username: ev.Username.Value(),
			Email:    ev.Email.Value(),
		},
	})
}

// RecordRoleAssigned and RecordRoleRemoved back finer-grained role events.
// The lifecycle use cases do not emit them; kept for direct role management.

func (s *AuditService) RecordRoleAssigned(ctx context.Context, actorID, targetUserID int64, role string, actor Actor) error {
	return s.save(ctx, &entity.AuditEvent{
		UserID:       actorID,
		Action:       entity.AuditRoleAssigned,
		TargetUserID: targetUserID,
		IPAddress:    actor.IP,
		UserAgent:    actor.UserAgent,
		Details:      entity.RoleChangeDetails{Role: role},
	})
}

func (s *AuditService) RecordRoleRemoved(ctx context.Context, actorID, targetUserID int64, role string, actor Actor) error {
	return s.save(ctx, &entity.AuditEvent{
		UserID:       actorID,
		Action:       entity.AuditRoleRemoved,
		TargetUserID: targetUserID,
		IPAddress:    actor.IP,
		UserAgent:    actor.UserAgent,
		Details:      entity.RoleChangeDetails{Role: role},
	})
}

func (s *AuditService) save(ctx context.Context, ev *entity.AuditEvent) error {
	if err := s.Repo.Save(ctx, ev); err != nil {
		return fmt.Errorf("%w: %v", ErrAuditWrite, err)
	}
	return nil
}
