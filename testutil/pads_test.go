package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/blackotp/pad"
)

func TestPadDir(t *testing.T) {
	dir := PadDir(t, ".pad", map[string]string{"1": "world", "2": "hello"})

	data, err := os.ReadFile(filepath.Join(dir, "1.pad"))
	if err != nil {
		t.Fatalf("read pad: %v", err)
	}
	if string(data) != "world" {
		t.Errorf("pad 1 = %q, want %q", data, "world")
	}
	if _, err := os.Stat(filepath.Join(dir, "2.pad")); err != nil {
		t.Errorf("pad 2 missing: %v", err)
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	WritePad(t, dir, "sub/one.bin", []byte("world"))

	path := WriteManifest(t, dir,
		pad.Entry{ID: "1", Path: "sub/one.bin", BLAKE2b: "auto"},
		pad.Entry{ID: "2", Path: "two.bin"},
	)

	m, err := pad.LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}

	e, ok := m.Lookup("1")
	if !ok {
		t.Fatal("entry 1 missing")
	}
	if err := e.Verify(); err != nil {
		t.Errorf("Verify: %v", err)
	}

	e, ok = m.Lookup("2")
	if !ok {
		t.Fatal("entry 2 missing")
	}
	if e.BLAKE2b != "" {
		t.Errorf("entry 2 checksum = %q, want empty", e.BLAKE2b)
	}
}
