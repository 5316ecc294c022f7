package pad

import (
	"errors"
	"fmt"
	"io"
)

// Pad errors.
var (
	// ErrExhausted indicates the pad holds fewer bytes than the message.
	ErrExhausted = errors.New("pad exhausted")

	// ErrInvalidOffset indicates a missing or negative pad offset.
	ErrInvalidOffset = errors.New("invalid pad offset")

	// ErrChecksumMismatch indicates a pad file does not match its manifest checksum.
	ErrChecksumMismatch = errors.New("pad checksum mismatch")

	// ErrInvalidManifest indicates a manifest with missing or duplicate entries.
	ErrInvalidManifest = errors.New("invalid pad manifest")
)

// ExhaustedError reports a pad too short for the message decoded against it.
// Path or Stream identifies the pad when it is known; both are empty for
// in-memory pads.
type ExhaustedError struct {
	Path   string        // Pad file, for path-based decodes
	Stream io.ReadSeeker // Pad stream, for stream-based decodes
	Need   int           // Bytes the message needs
	Have   int           // Bytes the pad supplied
}

func (e *ExhaustedError) Error() string {
	msg := fmt.Sprintf("%s: need %d bytes, have %d", ErrExhausted.Error(), e.Need, e.Have)
	if e.Path != "" {
		msg += " (path=" + e.Path + ")"
	}
	return msg
}

func (e *ExhaustedError) Unwrap() error {
	return ErrExhausted
}

// InvalidOffsetError reports an offset that is not a non-negative integer.
type InvalidOffsetError struct {
	Value any // The offending offset; nil when none was given
}

func (e *InvalidOffsetError) Error() string {
	if e.Value == nil {
		return ErrInvalidOffset.Error() + ": none given"
	}
	return fmt.Sprintf("%s: %v", ErrInvalidOffset.Error(), e.Value)
}

func (e *InvalidOffsetError) Unwrap() error {
	return ErrInvalidOffset
}

// ChecksumError reports a pad file whose contents do not match the manifest.
type ChecksumError struct {
	ID   string
	Path string
	Want string
	Got  string
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("%s: pad %q at %s: want %s, got %s",
		ErrChecksumMismatch.Error(), e.ID, e.Path, e.Want, e.Got)
}

func (e *ChecksumError) Unwrap() error {
	return ErrChecksumMismatch
}
