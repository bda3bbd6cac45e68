package control

import (
	"testing"
)

func TestFields_CaseInsensitiveLookup(t *testing.T) {
	f := NewFields()
	f.Set("Package", "vim")

	for _, key := range []string{"Package", "package", "PACKAGE", "pAcKaGe"} {
		v, ok := f.Get(key)
		if !ok {
			t.Errorf("Get(%q): not found", key)
		}
		if v != "vim" {
			t.Errorf("Get(%q) = %q, want %q", key, v, "vim")
		}
		if !f.Has(key) {
			t.Errorf("Has(%q) = false", key)
		}
	}

	if f.Has("Version") {
		t.Error("Has(Version) = true for absent field")
	}
	if _, ok := f.Get("Version"); ok {
		t.Error("Get(Version) found absent field")
	}
}

func TestFields_CanonicalCasingStable(t *testing.T) {
	f := NewFields()
	f.Set("Foo", "1")
	f.Set("FOO", "2")

	if v, _ := f.Get("foo"); v != "2" {
		t.Errorf("Get(foo) = %q, want %q", v, "2")
	}
	if f.Len() != 1 {
		t.Errorf("Len() = %d, want 1", f.Len())
	}

	for key := range f.All() {
		if key != "Foo" {
			t.Errorf("canonical key = %q, want %q", key, "Foo")
		}
	}
}

func TestFields_IterationOrderAndRestart(t *testing.T) {
	f := NewFields()
	f.Set("Package", "vim")
	f.Set("Version", "2:9.0")
	f.Set("Architecture", "amd64")
	f.Set("version", "2:9.1") // update, no new entry

	want := []string{"Package", "Version", "Architecture"}

	// Two passes over the same sequence must agree.
	for pass := 0; pass < 2; pass++ {
		var keys []string
		for key := range f.All() {
			keys = append(keys, key)
		}
		if len(keys) != len(want) {
			t.Fatalf("pass %d: got %d entries, want %d", pass, len(keys), len(want))
		}
		for i := range want {
			if keys[i] != want[i] {
				t.Errorf("pass %d: keys[%d] = %q, want %q", pass, i, keys[i], want[i])
			}
		}
	}

	if v, _ := f.Get("Version"); v != "2:9.1" {
		t.Errorf("Get(Version) = %q, want %q", v, "2:9.1")
	}
}

func TestFields_String(t *testing.T) {
	f := NewFields()
	f.Set("Package", "vim")
	f.Set("Description", "an editor\nwith a body\n\nand a second paragraph")
	f.Set("Tag", "")

	got := f.String()
	want := "Package: vim\n" +
		"Description: an editor\n" +
		" with a body\n" +
		" .\n" +
		" and a second paragraph\n" +
		"Tag:\n"
	if got != want {
		t.Errorf("String() mismatch.\nGot:\n%q\nWant:\n%q", got, want)
	}
}
