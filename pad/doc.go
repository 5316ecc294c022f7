// Package pad decodes message bytes by XOR against a one-time pad.
//
// A pad is read starting at a byte offset and must hold at least as many
// bytes as the message; a pad that runs out is an error, never a silent
// truncation or wrap-around.
//
// Core types:
//   - Source: a pad readable from an offset (Bytes, Stream, File)
//   - ExhaustedError: the pad is shorter than the message
//   - InvalidOffsetError: the offset is missing or negative
//   - Manifest: a YAML index of pad files with optional BLAKE2b checksums
//
// Decoding functions, from lowest to highest level:
//
//	// Lazy XOR of two sequences, stops at the shorter one
//	out := slices.Collect(pad.XOR(slices.Values(msg), slices.Values(key)))
//
//	// Eager XOR that fails when key is short
//	out, err := pad.XORList(msg, key)
//
//	// Read the key from an open stream; the stream is left open
//	seq, err := pad.XORStream(msg, f, 1024)
//
//	// Open, read and close a pad file
//	seq, err := pad.XORPath(msg, "pads/1.pad", 1024)
//
// Stream sources share their seek position with the caller and must not be
// decoded from concurrently. File sources open their own handle per call.
package pad
