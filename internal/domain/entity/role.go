package entity

// Role is an authorization role assigned to users (many-to-many).
// Roles are seed data; this service only reads them.
type Role struct {
	ID          int64
	Name        string
	Description string
}

// Role names used for route guarding. Seeded by cmd/seed.
const (
	RoleSystemAdmin = "SYSTEM_ADMIN"
	RoleUserAdmin   = "USER_ADMIN"
	RoleEmployee    = "EMPLOYEE"
)
