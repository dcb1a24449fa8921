package valueobject

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func wantInvalid(t *testing.T, err error, field string, kind InvalidKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error for %s (%s), got nil", field, kind)
	}
	var ive *InvalidValueError
	if !errors.As(err, &ive) {
		t.Fatalf("expected *InvalidValueError, got %T: %v", err, err)
	}
	if ive.Field != field {
		t.Errorf("field = %q, want %q", ive.Field, field)
	}
	if ive.Kind != kind {
		t.Errorf("kind = %q, want %q", ive.Kind, kind)
	}
}

func TestNewUsername(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		kind  InvalidKind
	}{
		{name: "valid", input: "testadmin", want: "testadmin"},
		{name: "trimmed", input: "  testadmin  ", want: "testadmin"},
		{name: "min length", input: "abc", want: "abc"},
		{name: "max length", input: strings.Repeat("a", 50), want: strings.Repeat("a", 50)},
		{name: "multibyte min length", input: "山田太", want: "山田太"},
		{name: "multibyte max length", input: strings.Repeat("山", 50), want: strings.Repeat("山", 50)},
		{name: "empty", input: "", kind: EmptyValue},
		{name: "whitespace only", input: "   ", kind: EmptyValue},
		{name: "too short", input: "ab", kind: TooShort},
		{name: "too short after trim", input: " ab ", kind: TooShort},
		{name: "too long", input: strings.Repeat("a", 51), kind: TooLong},
		{name: "multibyte too short", input: "山田", kind: TooShort},
		{name: "multibyte too long", input: strings.Repeat("山", 51), kind: TooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUsername(tt.input)
			if tt.kind != "" {
				wantInvalid(t, err, "username", tt.kind)
				return
			}
			if err != nil {
				t.Fatalf("NewUsername(%q) returned error: %v", tt.input, err)
			}
			if u.Value() != tt.want {
				t.Errorf("Value() = %q, want %q", u.Value(), tt.want)
			}
		})
	}
}

func TestNewEmail(t *testing.T) {
	longLocal := strings.Repeat("a", 90) + "@example.com" // 102 chars
	maxLocal := strings.Repeat("a", 88) + "@example.com"  // exactly 100 chars

	tests := []struct {
		name  string
		input string
		want  string
		kind  InvalidKind
	}{
		{name: "valid", input: "test@example.com", want: "test@example.com"},
		{name: "lowercased", input: "Test@Example.COM", want: "test@example.com"},
		{name: "trimmed", input: "  test@example.com ", want: "test@example.com"},
		{name: "plus and dots", input: "first.last+tag@mail.example.org", want: "first.last+tag@mail.example.org"},
		{name: "max length", input: maxLocal, want: maxLocal},
		{name: "empty", input: "", kind: EmptyValue},
		{name: "missing at", input: "testexample.com", kind: InvalidFormat},
		{name: "missing tld", input: "test@example", kind: InvalidFormat},
		{name: "one letter tld", input: "test@example.c", kind: InvalidFormat},
		{name: "spaces inside", input: "te st@example.com", kind: InvalidFormat},
		{name: "too long", input: longLocal, kind: TooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEmail(tt.input)
			if tt.kind != "" {
				wantInvalid(t, err, "email", tt.kind)
				return
			}
			if err != nil {
				t.Fatalf("NewEmail(%q) returned error: %v", tt.input, err)
			}
			if e.Value() != tt.want {
				t.Errorf("Value() = %q, want %q", e.Value(), tt.want)
			}
		})
	}
}

func TestNewPassword(t *testing.T) {
	if _, err := NewPassword(""); err == nil {
		t.Fatal("expected error for empty password")
	} else {
		wantInvalid(t, err, "password", EmptyValue)
	}

	if _, err := NewPassword("short7!"); err == nil {
		t.Fatal("expected error for short password")
	} else {
		wantInvalid(t, err, "password", TooShort)
	}

	if _, err := NewPassword(strings.Repeat("x", PasswordMinLen)); err != nil {
		t.Errorf("exact minimum length rejected: %v", err)
	}

	p, err := NewPassword("longenough")
	if err != nil {
		t.Fatalf("NewPassword returned error: %v", err)
	}
	if p.Raw() != "longenough" {
		t.Errorf("Raw() = %q, want %q", p.Raw(), "longenough")
	}
}

func TestPasswordStringMasks(t *testing.T) {
	p, err := NewPassword("supersecret")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.String(); got != "****" {
		t.Errorf("String() = %q, want masked", got)
	}
	if got := fmt.Sprintf("%v", p); strings.Contains(got, "supersecret") {
		t.Errorf("formatted password leaks raw value: %q", got)
	}
	if got := fmt.Sprintf("%s", p); got != "****" {
		t.Errorf("%%s format = %q, want masked", got)
	}
}
