// Package control parses RFC822-like key-value stanzas as used by
// Debian/APT metadata files ('control', 'Packages', 'Release').
//
// The package operates purely in-memory on text that the caller has
// already loaded: no file or network access is performed here. A stanza
// (one blank-line delimited block of "Key: value" lines) parses into a
// Fields store that preserves the casing each field name was first seen
// with while allowing lookups under any casing. Multi-stanza documents
// are split on blank lines and every stanza is parsed independently, so
// a malformed stanza never hides problems in its siblings.
//
// The grammar targets exactly the APT control-file dialect, including
// its line-folding rules, multi-line Description handling, and the '.'
// convention for blank lines inside wrapped text. It is not a general
// RFC822 or mail-header parser.
//
// Typed views over the parsed fields (binary package records, Release
// metadata) live in the sibling index package.
package control
