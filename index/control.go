// Package index builds typed records from parsed control stanzas.
//
// It covers the three record shapes found in an APT repository: the
// control stanza of a binary package (Control), its enriched form in a
// Packages index (Package), and the repository-level Release file
// (Release). Fields the builders do not know about stay reachable
// through each record's retained field store, so vendor-specific
// extensions are never lost.
package index

import (
	"strconv"
	"strings"

	"github.com/etnz/apt-parse/control"
)

// Control holds the typed fields of a binary package control stanza.
//
// Reference: https://www.debian.org/doc/debian-policy/ch-controlfields.html#binary-package-control-files-debian-control
type Control struct {
	// Fields is the underlying store, giving access to every field of
	// the stanza, including non-standard ones.
	Fields *control.Fields `json:"-"`

	Package      string `json:"package"`
	Source       string `json:"source,omitempty"`
	Version      string `json:"version"`
	Section      string `json:"section,omitempty"`
	Priority     string `json:"priority,omitempty"`
	Architecture string `json:"architecture"`

	// Essential is true iff the raw field value is exactly "yes".
	Essential bool `json:"essential,omitempty"`

	Depends    []string `json:"depends,omitempty"`
	PreDepends []string `json:"pre_depends,omitempty"`
	Recommends []string `json:"recommends,omitempty"`
	Suggests   []string `json:"suggests,omitempty"`
	Replaces   []string `json:"replaces,omitempty"`
	Enhances   []string `json:"enhances,omitempty"`
	Breaks     []string `json:"breaks,omitempty"`
	Conflicts  []string `json:"conflicts,omitempty"`

	// InstalledSize is the Installed-Size field in kilobytes, 0 when absent.
	InstalledSize int64 `json:"installed_size,omitempty"`

	Maintainer  string   `json:"maintainer,omitempty"`
	Description string   `json:"description,omitempty"`
	Homepage    string   `json:"homepage,omitempty"`
	BuiltUsing  string   `json:"built_using,omitempty"`
	PackageType string   `json:"package_type,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// ParseControl parses the raw text of a control stanza into a typed
// record. Package, Version, and Architecture are required; Installed-Size
// must be numeric when present.
func ParseControl(text string) (*Control, error) {
	fields, err := control.ParseStanza(text)
	if err != nil {
		return nil, err
	}
	return controlFromFields(fields, text)
}

func controlFromFields(f *control.Fields, stanza string) (*Control, error) {
	c := &Control{Fields: f}

	var err error
	if c.Package, err = required(f, FieldPackage, stanza); err != nil {
		return nil, err
	}
	if c.Version, err = required(f, FieldVersion, stanza); err != nil {
		return nil, err
	}
	if c.Architecture, err = required(f, FieldArchitecture, stanza); err != nil {
		return nil, err
	}

	c.Source = get(f, FieldSource)
	c.Section = get(f, FieldSection)
	c.Priority = get(f, FieldPriority)
	c.Essential = get(f, FieldEssential) == "yes"

	c.Depends = list(f, FieldDepends)
	c.PreDepends = list(f, FieldPreDepends)
	c.Recommends = list(f, FieldRecommends)
	c.Suggests = list(f, FieldSuggests)
	c.Replaces = list(f, FieldReplaces)
	c.Enhances = list(f, FieldEnhances)
	c.Breaks = list(f, FieldBreaks)
	c.Conflicts = list(f, FieldConflicts)

	if raw, ok := f.Get(string(FieldInstalledSize)); ok {
		c.InstalledSize, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, &FieldValueError{Field: string(FieldInstalledSize), Value: raw}
		}
	}

	c.Maintainer = get(f, FieldMaintainer)
	c.Description = get(f, FieldDescription)
	c.Homepage = get(f, FieldHomepage)
	c.BuiltUsing = get(f, FieldBuiltUsing)
	c.PackageType = get(f, FieldPackageType)
	c.Tags = list(f, FieldTag)

	return c, nil
}

// Get returns the raw value of any field of the stanza, typed or not.
func (c *Control) Get(key string) (string, bool) {
	return c.Fields.Get(key)
}

func get(f *control.Fields, field ControlField) string {
	v, _ := f.Get(string(field))
	return v
}

func required(f *control.Fields, field ControlField, stanza string) (string, error) {
	v, ok := f.Get(string(field))
	if !ok {
		return "", &MissingFieldError{Field: string(field), Stanza: stanza}
	}
	return v, nil
}

// list splits a comma-separated field into its trimmed elements,
// returning nil when the field is absent.
func list(f *control.Fields, field ControlField) []string {
	raw, ok := f.Get(string(field))
	if !ok {
		return nil
	}
	parts := strings.Split(raw, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		res = append(res, strings.TrimSpace(p))
	}
	return res
}
