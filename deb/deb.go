// Package deb extracts control metadata from Debian binary packages.
//
// A .deb file is an ar archive whose 'control.tar' (optionally gzipped)
// member carries the package's control stanza. This package walks the
// archive in a single streaming pass, without temporary files or
// external tools, and hands the stanza text to the index package for
// typed parsing.
package deb

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/blakesmith/ar"
	"github.com/etnz/apt-parse/index"
)

// ExtractControl reads a .deb archive and returns the raw text of its
// control file.
func ExtractControl(r io.Reader) (string, error) {
	arR := ar.NewReader(r)
	for {
		header, err := arR.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading ar header: %w", err)
		}

		// Some ar writers append a trailing slash to member names.
		name := strings.TrimSuffix(header.Name, "/")
		if !strings.HasPrefix(name, "control.tar") {
			continue
		}

		var tr *tar.Reader
		if strings.HasSuffix(name, ".gz") {
			gzr, err := gzip.NewReader(arR)
			if err != nil {
				return "", fmt.Errorf("opening %s: %w", name, err)
			}
			defer gzr.Close()
			tr = tar.NewReader(gzr)
		} else {
			tr = tar.NewReader(arR)
		}

		for {
			th, err := tr.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return "", fmt.Errorf("reading control tar header: %w", err)
			}
			if filepath.Base(th.Name) == "control" {
				var buf bytes.Buffer
				if _, err := io.Copy(&buf, tr); err != nil {
					return "", fmt.Errorf("reading control: %w", err)
				}
				return buf.String(), nil
			}
		}
	}
	return "", fmt.Errorf("control file not found")
}

// ReadControl extracts and parses the control metadata of a .deb
// archive read from r.
func ReadControl(r io.Reader) (*index.Control, error) {
	control, err := ExtractControl(r)
	if err != nil {
		return nil, err
	}
	return index.ParseControl(control)
}

// ReadControlFile is a convenience wrapper around ReadControl for a
// .deb file on disk.
func ReadControlFile(path string) (*index.Control, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadControl(f)
}
