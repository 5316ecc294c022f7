// Package testutil provides pad fixtures for tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/blackotp/pad"
)

// PadDir writes each pad to <dir>/<id><ext> in a fresh temp directory and
// returns the directory.
func PadDir(t *testing.T, ext string, pads map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for id, content := range pads {
		WritePad(t, dir, id+ext, []byte(content))
	}
	return dir
}

// WritePad writes a pad file under dir and returns its path.
func WritePad(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create pad dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write pad %s: %v", name, err)
	}
	return path
}

// WriteManifest writes a manifest listing entries to dir/pads.yaml and
// returns its path. Entries with BLAKE2b set to "auto" get the real
// checksum of their file.
func WriteManifest(t *testing.T, dir string, entries ...pad.Entry) string {
	t.Helper()

	for i, e := range entries {
		if e.BLAKE2b != "auto" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Path))
		if err != nil {
			t.Fatalf("failed to read pad %s: %v", e.Path, err)
		}
		sum, err := pad.Checksum(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("failed to hash pad %s: %v", e.Path, err)
		}
		entries[i].BLAKE2b = sum
	}

	data, err := yaml.Marshal(pad.Manifest{Pads: entries})
	if err != nil {
		t.Fatalf("failed to marshal manifest: %v", err)
	}

	path := filepath.Join(dir, "pads.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}
