package entity

import "time"

// AuditMeta records who created and last changed a row. Embedded by value
// in aggregates that need it instead of inheriting from a shared base.
type AuditMeta struct {
	CreatedBy int64
	CreatedAt time.Time
	UpdatedBy int64
	UpdatedAt time.Time
}
