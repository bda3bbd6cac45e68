package index

import "fmt"

// MissingFieldError reports a semantically required field that is
// absent from a structurally valid stanza.
type MissingFieldError struct {
	Field  string
	Stanza string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %s in stanza:\n%s", e.Field, e.Stanza)
}

// FieldValueError reports a field whose raw value could not be coerced
// to its expected shape (a non-numeric size, a hash list that does not
// split into (hash, size, filename) triples).
type FieldValueError struct {
	Field string
	Value string
}

func (e *FieldValueError) Error() string {
	return fmt.Sprintf("invalid value for field %s: %q", e.Field, e.Value)
}
