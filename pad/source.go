package pad

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Source is a pad that can be read from a byte offset.
type Source interface {
	// ReadPad returns up to n pad bytes starting at offset. Returning fewer
	// than n bytes without an error means the pad ran out.
	ReadPad(offset int64, n int) ([]byte, error)
}

// Bytes is a pad held in memory.
type Bytes []byte

// ReadPad implements Source.
func (b Bytes) ReadPad(offset int64, n int) ([]byte, error) {
	if offset >= int64(len(b)) {
		return nil, nil
	}
	end := min(int64(len(b)), offset+int64(n))
	return b[offset:end], nil
}

// Stream is a pad read through a caller-owned seekable stream.
// ReadPad moves the stream's position and never closes it.
type Stream struct {
	R io.ReadSeeker
}

// ReadPad implements Source.
func (s Stream) ReadPad(offset int64, n int) ([]byte, error) {
	if _, err := s.R.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek pad to %d: %w", offset, err)
	}

	buf := make([]byte, n)
	got, err := io.ReadFull(s.R, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("read pad: %w", err)
	}
	return buf[:got], nil
}

// File is a pad file addressed by path. Each ReadPad opens and closes its
// own handle.
type File struct {
	Path string
}

// ReadPad implements Source. An offset past the end of the file fails with
// an ExhaustedError before any pad bytes are read.
func (f File) ReadPad(offset int64, n int) ([]byte, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open pad: %w", err)
	}
	defer fh.Close()

	info, err := fh.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat pad: %w", err)
	}
	if offset > info.Size() {
		return nil, &ExhaustedError{Path: f.Path, Need: n}
	}

	return Stream{R: fh}.ReadPad(offset, n)
}
