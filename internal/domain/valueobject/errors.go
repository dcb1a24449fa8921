package valueobject

// InvalidKind classifies why a value object rejected its input.
type InvalidKind string

const (
	EmptyValue    InvalidKind = "empty_value"
	TooShort      InvalidKind = "too_short"
	TooLong       InvalidKind = "too_long"
	InvalidFormat InvalidKind = "invalid_format"
)

// InvalidValueError is returned by value object constructors when the raw
// input violates the value's invariant.
type InvalidValueError struct {
	Field   string
	Kind    InvalidKind
	Message string
}

func (e *InvalidValueError) Error() string {
	return e.Field + ": " + e.Message
}

func invalid(field string, kind InvalidKind, msg string) *InvalidValueError {
	return &InvalidValueError{Field: field, Kind: kind, Message: msg}
}
