package valueobject

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const emailMaxLen = 100

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Email is a validated, normalized (trimmed, lower-cased) email address.
type Email struct {
	value string
}

// NewEmail validates and normalizes the address. Comparison is effectively
// case-insensitive because the stored value is always lower-cased.
func NewEmail(raw string) (Email, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Email{}, invalid("email", EmptyValue, "email cannot be empty")
	}
	if utf8.RuneCountInString(v) > emailMaxLen {
		return Email{}, invalid("email", TooLong, "email must be at most 100 characters")
	}
	if !emailPattern.MatchString(v) {
		return Email{}, invalid("email", InvalidFormat, "invalid email format")
	}
	return Email{value: strings.ToLower(v)}, nil
}

func (e Email) Value() string  { return e.value }
func (e Email) String() string { return e.value }
