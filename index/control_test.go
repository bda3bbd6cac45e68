package index

import (
	"errors"
	"reflect"
	"testing"
)

const clangControl = `Package: clang
Source: llvm-defaults (0.54)
Version: 1:13.0-54
Architecture: amd64
Maintainer: Ubuntu Developers <ubuntu-devel-discuss@lists.ubuntu.com>
Original-Maintainer: LLVM Packaging Team <pkg-llvm-team@lists.alioth.debian.org>
Installed-Size: 24
Depends: clang-13 (>= 13~)
Breaks: clang-3.2, clang-3.3, clang-3.4 (<< 1:3.4.2-7~exp1)
Replaces: clang (<< 3.2-1~exp2), clang-3.2, clang-3.3
Section: devel
Priority: optional
Description: C, C++ and Objective-C compiler (LLVM based), clang binary
 Clang project is a C, C++, Objective C and Objective C++ front-end
 for the LLVM compiler.
 .
 This is a dependency package providing the default clang compiler.
`

func TestParseControl(t *testing.T) {
	c, err := ParseControl(clangControl)
	if err != nil {
		t.Fatalf("ParseControl failed: %v", err)
	}

	if c.Package != "clang" {
		t.Errorf("Package = %q", c.Package)
	}
	if c.Source != "llvm-defaults (0.54)" {
		t.Errorf("Source = %q", c.Source)
	}
	if c.Version != "1:13.0-54" {
		t.Errorf("Version = %q", c.Version)
	}
	if c.Architecture != "amd64" {
		t.Errorf("Architecture = %q", c.Architecture)
	}
	if c.Section != "devel" || c.Priority != "optional" {
		t.Errorf("Section/Priority = %q/%q", c.Section, c.Priority)
	}
	if c.Essential {
		t.Error("Essential = true without an Essential field")
	}
	if c.InstalledSize != 24 {
		t.Errorf("InstalledSize = %d, want 24", c.InstalledSize)
	}

	if want := []string{"clang-13 (>= 13~)"}; !reflect.DeepEqual(c.Depends, want) {
		t.Errorf("Depends = %v, want %v", c.Depends, want)
	}
	if want := []string{"clang-3.2", "clang-3.3", "clang-3.4 (<< 1:3.4.2-7~exp1)"}; !reflect.DeepEqual(c.Breaks, want) {
		t.Errorf("Breaks = %v, want %v", c.Breaks, want)
	}
	if c.PreDepends != nil {
		t.Errorf("PreDepends = %v, want nil for absent field", c.PreDepends)
	}

	wantDesc := "C, C++ and Objective-C compiler (LLVM based), clang binary\n" +
		"Clang project is a C, C++, Objective C and Objective C++ front-end for the LLVM compiler.\n\n" +
		"This is a dependency package providing the default clang compiler."
	if c.Description != wantDesc {
		t.Errorf("Description = %q, want %q", c.Description, wantDesc)
	}

	// Non-standard fields stay reachable.
	if v, _ := c.Get("Original-Maintainer"); v != "LLVM Packaging Team <pkg-llvm-team@lists.alioth.debian.org>" {
		t.Errorf("Get(Original-Maintainer) = %q", v)
	}
}

func TestParseControl_EssentialYes(t *testing.T) {
	c, err := ParseControl("Package: base-files\nVersion: 12\nArchitecture: amd64\nEssential: yes\n")
	if err != nil {
		t.Fatalf("ParseControl failed: %v", err)
	}
	if !c.Essential {
		t.Error("Essential = false, want true")
	}

	// Anything but the exact string "yes" is not essential.
	c, err = ParseControl("Package: base-files\nVersion: 12\nArchitecture: amd64\nEssential: Yes\n")
	if err != nil {
		t.Fatalf("ParseControl failed: %v", err)
	}
	if c.Essential {
		t.Error("Essential = true for raw value \"Yes\"")
	}
}

func TestParseControl_MissingRequired(t *testing.T) {
	stanzas := map[string]string{
		"Package":      "Version: 1.0\nArchitecture: amd64\n",
		"Version":      "Package: foo\nArchitecture: amd64\n",
		"Architecture": "Package: foo\nVersion: 1.0\n",
	}
	for field, stanza := range stanzas {
		_, err := ParseControl(stanza)
		var missing *MissingFieldError
		if !errors.As(err, &missing) {
			t.Fatalf("dropping %s: error = %v, want *MissingFieldError", field, err)
		}
		if missing.Field != field {
			t.Errorf("missing.Field = %q, want %q", missing.Field, field)
		}
	}
}

func TestParseControl_InstalledSizeNotNumeric(t *testing.T) {
	_, err := ParseControl("Package: foo\nVersion: 1.0\nArchitecture: amd64\nInstalled-Size: lots\n")
	var bad *FieldValueError
	if !errors.As(err, &bad) {
		t.Fatalf("error = %v, want *FieldValueError", err)
	}
	if bad.Field != "Installed-Size" || bad.Value != "lots" {
		t.Errorf("FieldValueError = %+v", bad)
	}
}

func TestParseControl_SyntaxErrorPropagates(t *testing.T) {
	_, err := ParseControl("garbage without a colon\n")
	if err == nil {
		t.Fatal("expected structural error")
	}
}
