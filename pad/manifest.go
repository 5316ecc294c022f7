package pad

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

// Manifest indexes pad files by the id that transcripts carry.
//
// Example manifest:
//
//	pads:
//	  - id: "1"
//	    path: pads/one.bin
//	    blake2b: 5e0a...
//
// Relative paths are resolved against the manifest's directory.
type Manifest struct {
	Pads []Entry `yaml:"pads"`

	dir string
}

// Entry is one pad listed in a Manifest.
type Entry struct {
	ID      string `yaml:"id"`
	Path    string `yaml:"path"`
	BLAKE2b string `yaml:"blake2b,omitempty"` // hex BLAKE2b-256 of the whole file
}

// LoadManifest reads and validates the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := ParseManifest(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseManifest decodes manifest YAML. dir is the base for relative pad paths.
func ParseManifest(data []byte, dir string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	m.dir = dir

	seen := make(map[string]bool, len(m.Pads))
	for i, e := range m.Pads {
		switch {
		case e.ID == "":
			return nil, fmt.Errorf("%w: entry %d has no id", ErrInvalidManifest, i)
		case e.Path == "":
			return nil, fmt.Errorf("%w: pad %q has no path", ErrInvalidManifest, e.ID)
		case seen[e.ID]:
			return nil, fmt.Errorf("%w: duplicate pad id %q", ErrInvalidManifest, e.ID)
		}
		seen[e.ID] = true
		m.Pads[i].BLAKE2b = strings.ToLower(e.BLAKE2b)
	}
	return &m, nil
}

// Lookup returns the entry for id with its path resolved.
func (m *Manifest) Lookup(id string) (Entry, bool) {
	for _, e := range m.Pads {
		if e.ID != id {
			continue
		}
		if !filepath.IsAbs(e.Path) && m.dir != "" {
			e.Path = filepath.Join(m.dir, e.Path)
		}
		return e, true
	}
	return Entry{}, false
}

// Verify checks the pad file against its checksum. Entries without a
// checksum always verify.
func (e Entry) Verify() error {
	if e.BLAKE2b == "" {
		return nil
	}

	f, err := os.Open(e.Path)
	if err != nil {
		return fmt.Errorf("open pad: %w", err)
	}
	defer f.Close()

	sum, err := Checksum(f)
	if err != nil {
		return err
	}
	if sum != e.BLAKE2b {
		return &ChecksumError{ID: e.ID, Path: e.Path, Want: e.BLAKE2b, Got: sum}
	}
	return nil
}

// Checksum returns the hex BLAKE2b-256 digest of everything read from r.
func Checksum(r io.Reader) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("hash pad: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
