package index

import (
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// NewReader wraps r with the decompressor implied by name's extension.
// Plain, gzip (.gz), and zstandard (.zst) index streams are supported,
// which covers the compressions APT repositories commonly publish their
// Packages files under. The caller owns closing the returned reader.
func NewReader(r io.Reader, name string) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream %s: %w", name, err)
		}
		return gzr, nil
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening zstd stream %s: %w", name, err)
		}
		return zr.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}

// ReadPackages decompresses an index stream according to name's
// extension and parses it as a Packages index.
func ReadPackages(r io.Reader, name string) (Packages, error) {
	dec, err := NewReader(r, name)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	content, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading index %s: %w", name, err)
	}
	return ParsePackages(string(content))
}
