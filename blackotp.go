package blackotp

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/randalmurphal/blackotp/pad"
	"github.com/randalmurphal/blackotp/transcript"
)

// Decoder turns transcript text into message bytes using pads found through
// a manifest or a pad directory. A Decoder is safe for concurrent use.
type Decoder struct {
	cfg      Config
	manifest *pad.Manifest
	logger   *slog.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger for debug output. Nil means slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// WithManifest uses an already loaded manifest instead of cfg.ManifestPath.
func WithManifest(m *pad.Manifest) Option {
	return func(d *Decoder) {
		d.manifest = m
	}
}

// New creates a Decoder, loading the manifest named in cfg if there is one.
func New(cfg Config, opts ...Option) (*Decoder, error) {
	d := &Decoder{cfg: cfg}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}

	if d.manifest == nil && cfg.ManifestPath != "" {
		m, err := pad.LoadManifest(cfg.ManifestPath)
		if err != nil {
			return nil, err
		}
		d.manifest = m
	}

	return d, nil
}

// PadPath returns the pad file for a transcript id. Manifest entries win
// over the pad directory, and are checked against their checksum. The check
// hashes the whole pad file on every call.
func (d *Decoder) PadPath(id string) (string, error) {
	if id == "" {
		return "", ErrNoPadID
	}
	if !validID(id) {
		return "", &PadError{ID: id, Err: ErrInvalidPadID}
	}

	if d.manifest != nil {
		if entry, ok := d.manifest.Lookup(id); ok {
			if err := entry.Verify(); err != nil {
				return "", &PadError{ID: id, Err: err}
			}
			d.logger.Debug("resolved pad from manifest",
				slog.String("id", id),
				slog.String("path", entry.Path))
			return entry.Path, nil
		}
	}

	if d.cfg.PadDir == "" {
		return "", &PadError{ID: id, Err: ErrUnknownPad}
	}
	path := filepath.Join(d.cfg.PadDir, id+d.cfg.PadExt)
	d.logger.Debug("resolved pad from pad dir",
		slog.String("id", id),
		slog.String("path", path))
	return path, nil
}

// validID reports whether id is made only of ASCII digits, the only ids a
// transcript can carry.
func validID(id string) bool {
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

// Decode recovers the message bytes of t. The transcript must carry both an
// id, to find the pad, and an offset.
func (d *Decoder) Decode(t transcript.Transcript) ([]byte, error) {
	numbers, err := t.Bytes()
	if err != nil {
		return nil, err
	}
	offset, err := pad.Offset(t.Offset)
	if err != nil {
		return nil, err
	}
	path, err := d.PadPath(t.IDString())
	if err != nil {
		return nil, err
	}

	seq, err := pad.XORPath(numbers, path, offset)
	if err != nil {
		return nil, &PadError{ID: t.IDString(), Err: err}
	}

	out := slices.AppendSeq(make([]byte, 0, len(numbers)), seq)
	d.logger.Debug("decoded transcript",
		slog.String("id", t.IDString()),
		slog.Int64("offset", offset),
		slog.Int("bytes", len(out)))
	return out, nil
}

// DecodeText parses text as a transcript and decodes it.
func (d *Decoder) DecodeText(text string) ([]byte, error) {
	t, err := transcript.Parse(text)
	if err != nil {
		return nil, err
	}
	return d.Decode(t)
}

// EncodeText XORs plaintext against the pad for id at offset and renders
// the result as transcript text. It reuses an existing pad; it never
// creates one.
func (d *Decoder) EncodeText(id string, offset int, plaintext []byte) (string, error) {
	path, err := d.PadPath(id)
	if err != nil {
		return "", err
	}

	seq, err := pad.XORPath(plaintext, path, int64(offset))
	if err != nil {
		return "", &PadError{ID: id, Err: err}
	}

	numbers := make([]int, 0, len(plaintext))
	for b := range seq {
		numbers = append(numbers, int(b))
	}

	text, err := transcript.New(numbers, &offset, id).Render()
	if err != nil {
		return "", fmt.Errorf("render transcript: %w", err)
	}
	return text, nil
}
