package application

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrMissingRoles       = errors.New("role names are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAuditWrite marks a failed audit record write. Fatal: the enclosing
	// transaction must roll back, audit is not best-effort.
	ErrAuditWrite = errors.New("audit record write failed")
)

// UnknownRolesError lists every requested role name with no matching role.
type UnknownRolesError struct {
	Names []string
}

func (e *UnknownRolesError) Error() string {
	names := append([]string(nil), e.Names...)
	sort.Strings(names)
	return "unknown roles: " + strings.Join(names, ", ")
}
