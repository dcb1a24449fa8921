package entity

import "time"

// AuditAction enumerates the administrative actions recorded in the audit
// trail. Stored as strings so the log stays readable without a lookup table.
type AuditAction string

const (
	AuditUserCreated  AuditAction = "USER_CREATED"
	AuditUserUpdated  AuditAction = "USER_UPDATED"
	AuditUserDeleted  AuditAction = "USER_DELETED"
	AuditRoleAssigned AuditAction = "ROLE_ASSIGNED"
	AuditRoleRemoved  AuditAction = "ROLE_REMOVED"
)

// AuditDetails is the per-action payload of an audit record. Each action
// carries its own typed field set; serialization to JSONB happens only at
// the storage boundary.
type AuditDetails interface {
	auditDetails()
}

// CreatedDetails describes a USER_CREATED record.
type CreatedDetails struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// UpdatedDetails describes a USER_UPDATED record with before/after values.
type UpdatedDetails struct {
	OldUsername string   `json:"oldUsername"`
	NewUsername string   `json:"newUsername"`
	OldEmail    string   `json:"oldEmail"`
	NewEmail    string   `json:"newEmail"`
	OldRoles    []string `json:"oldRoles"`
	NewRoles    []string `json:"newRoles"`
}

// DeletedDetails snapshots the user as it was before deletion.
type DeletedDetails struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RoleChangeDetails describes ROLE_ASSIGNED / ROLE_REMOVED records.
// Reserved for finer-grained role events; not emitted by the three
// lifecycle use cases.
type RoleChangeDetails struct {
	Role string `json:"role"`
}

func (CreatedDetails) auditDetails()    {}
func (UpdatedDetails) auditDetails()    {}
func (DeletedDetails) auditDetails()    {}
func (RoleChangeDetails) auditDetails() {}

// AuditEvent is one append-only audit trail row. UserID is the acting
// administrator, TargetUserID the affected user. TargetUserID is a logical
// reference: the row stays valid after the target user is deleted.
type AuditEvent struct {
	ID           int64
	UserID       int64
	Action       AuditAction
	TargetUserID int64
	IPAddress    string
	UserAgent    string
	Details      AuditDetails
	CreatedAt    time.Time
}
