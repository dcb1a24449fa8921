package application

import (
	"context"
	"time"

	"user-admin-service/internal/domain/entity"
	"user-admin-service/pkg/helpers"
	"user-admin-service/pkg/mailer"
)

// AuditNotifier queues a notification job for the audit worker after a
// lifecycle use case commits. Delivery is at-most-once from this side;
// losing a notification never affects the audit trail itself.
type AuditNotifier struct {
	Pub *helpers.RabbitPublisher
}

func NewAuditNotifier(pub *helpers.RabbitPublisher) *AuditNotifier {
	return &AuditNotifier{Pub: pub}
}

func (n *AuditNotifier) Publish(ctx context.Context, action entity.AuditAction, actorID int64, u *entity.User) error {
	job := mailer.AuditNotification{
		Action:       string(action),
		ActorID:      actorID,
		TargetUserID: u.ID,
		Username:     u.Username,
		Email:        u.Email,
		RoleNames:    u.RoleNames(),
		OccurredAt:   time.Now().UTC(),
	}
	c, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return n.Pub.PublishJSON(c, job)
}
