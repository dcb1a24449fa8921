package service

import "errors"

var (
	// ErrDuplicateUsername means another user already holds the username.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrDuplicateEmail means another user already holds the email.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrHashing wraps a password hashing failure. Infrastructure failure,
	// not a client-input problem; callers must abort the use case.
	ErrHashing = errors.New("password hashing failed")
)
