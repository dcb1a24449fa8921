package valueobject

import (
	"strings"
	"unicode/utf8"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 50
)

// Username is a validated user name. Construct via NewUsername; the zero
// value is not a valid username.
type Username struct {
	value string
}

// NewUsername trims the input and validates the 3..50 character bounds.
// Bounds count characters, not bytes, so multibyte names are measured the
// same way the request validation layer measures them.
func NewUsername(raw string) (Username, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Username{}, invalid("username", EmptyValue, "username cannot be empty")
	}
	n := utf8.RuneCountInString(v)
	if n < usernameMinLen {
		return Username{}, invalid("username", TooShort, "username must be at least 3 characters")
	}
	if n > usernameMaxLen {
		return Username{}, invalid("username", TooLong, "username must be at most 50 characters")
	}
	return Username{value: v}, nil
}

func (u Username) Value() string  { return u.value }
func (u Username) String() string { return u.value }
