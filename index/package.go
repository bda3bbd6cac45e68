package index

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/etnz/apt-parse/control"
	"golang.org/x/sync/errgroup"
)

// Package is one entry of a Packages index: a control stanza enriched
// with the download location and integrity metadata of the .deb file.
type Package struct {
	Control

	Filename string `json:"filename"`

	// Size is the .deb file size in bytes. A Size field that is present
	// but not numeric is stored as -1 rather than failing the record;
	// indices in the wild carry the occasional garbage size and the
	// field is recoverable from the file itself.
	Size int64 `json:"size"`

	MD5Sum         string `json:"md5sum,omitempty"`
	SHA1           string `json:"sha1,omitempty"`
	SHA256         string `json:"sha256,omitempty"`
	SHA512         string `json:"sha512,omitempty"`
	DescriptionMD5 string `json:"description_md5,omitempty"`
}

// ParsePackage parses one Packages index stanza. On top of the Control
// requirements, Filename and Size must be present.
func ParsePackage(text string) (*Package, error) {
	c, err := ParseControl(text)
	if err != nil {
		return nil, err
	}
	return packageFromControl(c, text)
}

func packageFromControl(c *Control, stanza string) (*Package, error) {
	p := &Package{Control: *c}

	var err error
	if p.Filename, err = required(c.Fields, FieldFilename, stanza); err != nil {
		return nil, err
	}
	rawSize, err := required(c.Fields, FieldSize, stanza)
	if err != nil {
		return nil, err
	}
	p.Size, err = strconv.ParseInt(rawSize, 10, 64)
	if err != nil {
		p.Size = -1
	}

	p.MD5Sum = get(c.Fields, FieldMD5Sum)
	p.SHA1 = get(c.Fields, FieldSHA1)
	p.SHA256 = get(c.Fields, FieldSHA256)
	p.SHA512 = get(c.Fields, FieldSHA512)
	p.DescriptionMD5 = get(c.Fields, FieldDescriptionMD5)

	return p, nil
}

// Packages is the ordered content of a Packages index.
type Packages []*Package

// ParsePackages parses a whole Packages index. Stanzas are parsed
// concurrently and independently; if any fail, the returned
// *control.DocumentError lists every failing stanza rather than just
// the first one.
func ParsePackages(text string) (Packages, error) {
	clean := strings.ReplaceAll(text, "\r\n", "\n")
	clean = strings.ReplaceAll(clean, "\x00", "")
	stanzas := strings.Split(strings.TrimSpace(clean), "\n\n")

	packages := make(Packages, len(stanzas))
	errs := make([]error, len(stanzas))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, stanza := range stanzas {
		g.Go(func() error {
			packages[i], errs[i] = ParsePackage(stanza)
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
		return nil, &control.DocumentError{Doc: text, Errors: messages}
	}
	return packages, nil
}
