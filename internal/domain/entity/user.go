package entity

import (
	"sort"
	"time"
)

// User is the aggregate root of the employee directory.
// PasswordHash holds a bcrypt hash; the raw password never reaches this type.
// Username and email are unique across all users, enforced both by the
// domain-level uniqueness check and by unique indexes in the store.
type User struct {
	ID               int64
	Username         string
	Email            string
	PasswordHash     string
	RegistrationDate time.Time
	LastLogin        *time.Time
	AvatarURL        string
	Roles            []Role
	AuditMeta
}

// RoleNames returns the assigned role names, sorted for stable comparison.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}

// HasAnyRole reports whether the user holds at least one of the given roles.
func (u *User) HasAnyRole(names ...string) bool {
	for _, r := range u.Roles {
		for _, n := range names {
			if r.Name == n {
				return true
			}
		}
	}
	return false
}
