package control

import (
	"fmt"
	"iter"
	"strings"
)

// Fields is an ordered collection of control file fields with
// case-insensitive names.
//
// Debian field names are conventionally title-cased ("Package",
// "Pre-Depends") but producers are inconsistent, so lookups fold case.
// The casing a name was first inserted with is kept as its display
// casing: inserting "Foo" and later "FOO" updates the single logical
// entry while iteration keeps reporting it as "Foo". This matters for
// vendor-specific extension fields that get re-serialized or surfaced
// to users exactly as they appeared in the source.
type Fields struct {
	names  map[string]string // case-folded name -> canonical (first seen) name
	values map[string]string // canonical name -> current value
	order  []string          // canonical names in first-insertion order
}

// NewFields returns an empty field store.
func NewFields() *Fields {
	return &Fields{
		names:  make(map[string]string),
		values: make(map[string]string),
	}
}

// Set stores value under key. If an entry already exists under any
// casing of key, its value is replaced but its display casing is kept.
func (f *Fields) Set(key, value string) {
	folded := strings.ToLower(key)
	canon, ok := f.names[folded]
	if !ok {
		canon = key
		f.names[folded] = key
		f.order = append(f.order, key)
	}
	f.values[canon] = value
}

// Get returns the value stored under any casing of key.
func (f *Fields) Get(key string) (string, bool) {
	canon, ok := f.names[strings.ToLower(key)]
	if !ok {
		return "", false
	}
	return f.values[canon], true
}

// Has reports whether a field exists under any casing of key.
func (f *Fields) Has(key string) bool {
	_, ok := f.names[strings.ToLower(key)]
	return ok
}

// Len returns the number of distinct fields.
func (f *Fields) Len() int {
	return len(f.values)
}

// All yields every field once, in first-insertion order, as its
// canonical-cased name and current value. The sequence is restartable
// and does not mutate the store.
func (f *Fields) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, canon := range f.order {
			if !yield(canon, f.values[canon]) {
				return
			}
		}
	}
}

// String renders the fields back into control file syntax. Multi-line
// values are written in folded form: continuation lines are indented
// with a single space and blank lines become the ' .' marker.
func (f *Fields) String() string {
	var b strings.Builder
	for key, value := range f.All() {
		writeField(&b, key, value)
	}
	return b.String()
}

func writeField(b *strings.Builder, key, value string) {
	lines := strings.Split(value, "\n")
	if lines[0] == "" && len(lines) == 1 {
		fmt.Fprintf(b, "%s:\n", key)
		return
	}
	fmt.Fprintf(b, "%s: %s\n", key, lines[0])
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			b.WriteString(" .\n")
		} else {
			fmt.Fprintf(b, " %s\n", line)
		}
	}
}
