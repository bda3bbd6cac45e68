package index

import (
	"strconv"
	"strings"

	"github.com/etnz/apt-parse/control"
)

// FileHash is one (checksum, size, filename) entry of a Release hash
// list, describing the integrity metadata of one index file.
type FileHash struct {
	Hash     string `json:"hash"`
	Size     uint64 `json:"size"`
	Filename string `json:"filename"`
}

// Release holds the typed fields of a repository Release file.
//
// Reference: https://wiki.debian.org/DebianRepository/Format#A.22Release.22_files
type Release struct {
	// Fields is the underlying store, giving access to every field of
	// the stanza, including non-standard ones.
	Fields *control.Fields `json:"-"`

	Architectures []string `json:"architectures"`
	Components    []string `json:"components"`

	Description string `json:"description,omitempty"`
	Origin      string `json:"origin,omitempty"`
	Label       string `json:"label,omitempty"`
	Suite       string `json:"suite,omitempty"`
	Version     string `json:"version,omitempty"`
	Codename    string `json:"codename,omitempty"`
	Date        string `json:"date,omitempty"`
	ValidUntil  string `json:"valid_until,omitempty"`
	SignedBy    string `json:"signed_by,omitempty"`

	MD5Sum []FileHash `json:"md5sum,omitempty"`
	SHA1   []FileHash `json:"sha1,omitempty"`
	SHA256 []FileHash `json:"sha256,omitempty"`
	SHA512 []FileHash `json:"sha512,omitempty"`

	NotAutomatic                 bool `json:"not_automatic,omitempty"`
	ButAutomaticUpgrades         bool `json:"but_automatic_upgrades,omitempty"`
	AcquireByHash                bool `json:"acquire_by_hash,omitempty"`
	PackagesRequireAuthorization bool `json:"packages_require_authorization,omitempty"`
	NoSupportForArchitectureAll  bool `json:"no_support_for_architecture_all,omitempty"`
}

// ParseRelease parses the raw text of a Release file. Architectures and
// Components are required; hash lists must tokenize into full
// (hash, size, filename) triples with numeric sizes.
func ParseRelease(text string) (*Release, error) {
	f, err := control.ParseStanza(text)
	if err != nil {
		return nil, err
	}

	r := &Release{Fields: f}

	arch, ok := f.Get(string(RelArchitectures))
	if !ok {
		return nil, &MissingFieldError{Field: string(RelArchitectures), Stanza: text}
	}
	r.Architectures = strings.Fields(arch)

	comp, ok := f.Get(string(RelComponents))
	if !ok {
		return nil, &MissingFieldError{Field: string(RelComponents), Stanza: text}
	}
	r.Components = strings.Fields(comp)

	// A synopsis-less multi-line description keeps its bootstrap
	// newline when it is the stanza's last field; drop trailing ones.
	r.Description = strings.TrimRight(relGet(f, RelDescription), "\n")

	r.Origin = relGet(f, RelOrigin)
	r.Label = relGet(f, RelLabel)
	r.Suite = relGet(f, RelSuite)
	r.Version = relGet(f, RelVersion)
	r.Codename = relGet(f, RelCodename)
	r.Date = relGet(f, RelDate)
	r.ValidUntil = relGet(f, RelValidUntil)
	r.SignedBy = relGet(f, RelSignedBy)

	if r.MD5Sum, err = hashList(f, RelMD5Sum); err != nil {
		return nil, err
	}
	if r.SHA1, err = hashList(f, RelSHA1); err != nil {
		return nil, err
	}
	if r.SHA256, err = hashList(f, RelSHA256); err != nil {
		return nil, err
	}
	if r.SHA512, err = hashList(f, RelSHA512); err != nil {
		return nil, err
	}

	r.NotAutomatic = relGet(f, RelNotAutomatic) == "yes"
	r.ButAutomaticUpgrades = relGet(f, RelButAutomaticUpgrades) == "yes"
	r.AcquireByHash = relGet(f, RelAcquireByHash) == "yes"
	r.PackagesRequireAuthorization = relGet(f, RelPackagesRequireAuth) == "yes"
	r.NoSupportForArchitectureAll = relGet(f, RelNoSupportForArchAll) == "yes"

	return r, nil
}

// Get returns the raw value of any field of the stanza, typed or not.
func (r *Release) Get(key string) (string, bool) {
	return r.Fields.Get(key)
}

func relGet(f *control.Fields, field ReleaseField) string {
	v, _ := f.Get(string(field))
	return v
}

// hashList tokenizes a hash field on whitespace and groups the tokens
// into (hash, size, filename) triples. It returns nil when the field is
// absent, and a *FieldValueError when the token count is not a multiple
// of three or a size is not numeric.
func hashList(f *control.Fields, field ReleaseField) ([]FileHash, error) {
	raw, ok := f.Get(string(field))
	if !ok {
		return nil, nil
	}

	tokens := strings.Fields(raw)
	if len(tokens)%3 != 0 {
		return nil, &FieldValueError{Field: string(field), Value: raw}
	}

	hashes := make([]FileHash, 0, len(tokens)/3)
	for i := 0; i < len(tokens); i += 3 {
		size, err := strconv.ParseUint(tokens[i+1], 10, 64)
		if err != nil {
			return nil, &FieldValueError{Field: string(field), Value: tokens[i+1]}
		}
		hashes = append(hashes, FileHash{
			Hash:     tokens[i],
			Size:     size,
			Filename: tokens[i+2],
		})
	}
	return hashes, nil
}
