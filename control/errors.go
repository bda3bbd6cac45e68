package control

import (
	"fmt"
	"strings"
)

// SyntaxError reports a stanza line that matches none of the recognized
// forms: not a "Key: value" declaration, not a bare "Key:" header, and
// not a continuation of an already open field.
type SyntaxError struct {
	// Line is the offending physical line, whitespace-trimmed.
	Line string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %q is not a valid control field", e.Line)
}

// DocumentError aggregates the failures of a multi-stanza parse. Every
// stanza is attempted before the error is returned, so Errors lists one
// message per failing stanza, in document order, each prefixed with the
// stanza's position.
type DocumentError struct {
	// Doc is the original document text, kept for diagnostics.
	Doc string
	// Errors holds one message per failed stanza.
	Errors []string
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("%d stanza(s) failed to parse:\n - %s",
		len(e.Errors), strings.Join(e.Errors, "\n - "))
}
