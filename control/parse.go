package control

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// fieldLine matches the primary "Key: value" declaration. The key
// capture is lazy so values that themselves contain ": " are split at
// the first separator only.
var fieldLine = regexp.MustCompile(`^(.*?):\s(.*)$`)

// ParseStanza parses the raw text of a single control stanza into a
// field store.
//
// Line endings are normalized and NUL bytes dropped before scanning.
// Each line is either a "Key: value" declaration, a bare "Key:" header
// opening a field whose whole content arrives on following lines, or a
// continuation of the most recently declared field. Continuations are
// space-folded onto the current value; a line holding the single
// character '.' stands for an intentional blank line inside wrapped
// text. A repeated top-level key is silently ignored (first occurrence
// wins). Any line fitting none of these forms is a *SyntaxError.
//
// Description fields get one extra rule: a non-empty synopsis is stored
// with a trailing newline so the first detail line attaches below it
// rather than being space-folded into it. The newline is stripped again
// if the description turns out to have no detail lines at all.
func ParseStanza(text string) (*Fields, error) {
	clean := strings.ReplaceAll(text, "\r\n", "\n")
	clean = strings.ReplaceAll(clean, "\x00", "")

	fields := NewFields()
	currentKey := ""

	for _, line := range strings.Split(strings.TrimSpace(clean), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := fieldLine.FindStringSubmatch(line)
		if m == nil {
			if strings.HasSuffix(line, ":") {
				currentKey = strings.TrimSuffix(line, ":")
				fields.Set(currentKey, "")
				continue
			}
			if currentKey != "" {
				existing, _ := fields.Get(currentKey)
				switch {
				case line == ".":
					fields.Set(currentKey, existing+"\n\n")
				case strings.HasSuffix(existing, "\n"):
					fields.Set(currentKey, existing+line)
				default:
					fields.Set(currentKey, existing+" "+line)
				}
				continue
			}
			return nil, &SyntaxError{Line: line}
		}

		key, value := m[1], m[2]
		if fields.Has(key) {
			// Repeated declaration: keep the first value. The current
			// field is deliberately not redirected either.
			continue
		}

		if strings.EqualFold(key, "Description") && value != "" {
			fields.Set(key, value+"\n")
		} else {
			if strings.EqualFold(currentKey, "Description") {
				// The previous description never saw a detail line;
				// drop its bootstrap newline.
				existing, _ := fields.Get(currentKey)
				if strings.HasSuffix(existing, "\n") {
					fields.Set(currentKey, strings.TrimSuffix(existing, "\n"))
				}
			}
			fields.Set(key, value)
		}
		currentKey = key
	}

	return fields, nil
}

// ParseDocument parses a multi-stanza document (e.g. a Packages index)
// into one field store per stanza, in document order.
//
// Stanzas are split on blank lines and parsed concurrently; they share
// no state, so the only join point is collecting the ordered results.
// Parsing never stops at the first bad stanza: if any fail, the
// returned *DocumentError carries every failure message so the caller
// sees all problems at once.
func ParseDocument(text string) ([]*Fields, error) {
	clean := strings.ReplaceAll(text, "\r\n", "\n")
	clean = strings.ReplaceAll(clean, "\x00", "")
	stanzas := strings.Split(strings.TrimSpace(clean), "\n\n")

	results := make([]*Fields, len(stanzas))
	errs := make([]error, len(stanzas))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, stanza := range stanzas {
		g.Go(func() error {
			results[i], errs[i] = ParseStanza(stanza)
			return nil
		})
	}
	g.Wait()

	var messages []string
	for i, err := range errs {
		if err != nil {
			messages = append(messages, fmt.Sprintf("stanza %d: %v", i+1, err))
		}
	}
	if len(messages) > 0 {
		return nil, &DocumentError{Doc: text, Errors: messages}
	}
	return results, nil
}
