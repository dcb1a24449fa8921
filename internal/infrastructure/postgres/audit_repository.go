package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"user-admin-service/internal/domain/entity"
	"user-admin-service/internal/domain/repository"
)

// AuditEventRepository appends audit rows. The typed details payload is
// marshaled to JSONB here, at the storage boundary only.
type AuditEventRepository struct {
	pool *pgxpool.Pool
}

func NewAuditEventRepository(pool *pgxpool.Pool) *AuditEventRepository {
	return &AuditEventRepository{pool: pool}
}

func (r *AuditEventRepository) Save(ctx context.Context, ev *entity.AuditEvent) error {
	q := querierFrom(ctx, r.pool)
	details, err := json.Marshal(ev.Details)
	if err != nil {
		return err
	}
	row := q.QueryRow(ctx, `
		INSERT INTO user_audit_events (user_id, action, target_user_id, ip_address, user_agent, details)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, ev.UserID, string(ev.Action), ev.TargetUserID, nullable(ev.IPAddress), nullable(ev.UserAgent), details)
	return row.Scan(&ev.ID, &ev.CreatedAt)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

var _ repository.AuditEventRepository = (*AuditEventRepository)(nil)
