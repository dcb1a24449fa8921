package valueobject

// PasswordMinLen is the single canonical minimum. The request validation
// layer enforces the same bound so both layers agree.
const PasswordMinLen = 8

// Password wraps a raw secret awaiting hashing. The raw value never leaves
// this type except through Raw(), which only the hashing collaborator and
// tests should call.
type Password struct {
	raw string
}

func NewPassword(raw string) (Password, error) {
	if raw == "" {
		return Password{}, invalid("password", EmptyValue, "password cannot be empty")
	}
	if len(raw) < PasswordMinLen {
		return Password{}, invalid("password", TooShort, "password must be at least 8 characters")
	}
	return Password{raw: raw}, nil
}

// Raw returns the secret for hashing.
func (p Password) Raw() string { return p.raw }

// String masks the secret so it cannot leak through formatting or logs.
func (p Password) String() string { return "****" }
