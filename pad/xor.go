package pad

import (
	"io"
	"iter"
	"slices"
)

// XOR yields numbers[i] ^ key[i] for as long as both sequences have
// elements. It does no bounds checking; a short key ends the output early.
func XOR(numbers, key iter.Seq[byte]) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		next, stop := iter.Pull(key)
		defer stop()

		for n := range numbers {
			k, ok := next()
			if !ok {
				return
			}
			if !yield(n ^ k) {
				return
			}
		}
	}
}

// XORList decodes numbers against key, failing with an ExhaustedError when
// key is shorter than numbers.
func XORList(numbers, key []byte) ([]byte, error) {
	if len(key) < len(numbers) {
		return nil, &ExhaustedError{Need: len(numbers), Have: len(key)}
	}
	out := make([]byte, 0, len(numbers))
	return slices.AppendSeq(out, XOR(slices.Values(numbers), slices.Values(key))), nil
}

// Decode reads len(numbers) pad bytes from src at offset and returns the
// lazy XOR of numbers against them.
func Decode(numbers []byte, src Source, offset int64) (iter.Seq[byte], error) {
	if offset < 0 {
		return nil, &InvalidOffsetError{Value: offset}
	}

	key, err := src.ReadPad(offset, len(numbers))
	if err != nil {
		return nil, err
	}
	if len(key) < len(numbers) {
		e := &ExhaustedError{Need: len(numbers), Have: len(key)}
		switch s := src.(type) {
		case File:
			e.Path = s.Path
		case *File:
			e.Path = s.Path
		case Stream:
			e.Stream = s.R
		case *Stream:
			e.Stream = s.R
		}
		return nil, e
	}

	return XOR(slices.Values(numbers), slices.Values(key)), nil
}

// XORStream decodes numbers against the pad in r starting at offset.
// The key bytes are read before XORStream returns. r is not closed, so the
// caller can keep decoding from it.
func XORStream(numbers []byte, r io.ReadSeeker, offset int64) (iter.Seq[byte], error) {
	return Decode(numbers, Stream{R: r}, offset)
}

// XORPath decodes numbers against the pad file at path starting at offset.
// The file is closed before XORPath returns.
func XORPath(numbers []byte, path string, offset int64) (iter.Seq[byte], error) {
	return Decode(numbers, File{Path: path}, offset)
}

// Offset converts an optional offset, as carried by a transcript, into a
// decode offset. A nil or negative offset is an InvalidOffsetError.
func Offset(p *int) (int64, error) {
	if p == nil {
		return 0, &InvalidOffsetError{}
	}
	if *p < 0 {
		return 0, &InvalidOffsetError{Value: *p}
	}
	return int64(*p), nil
}
