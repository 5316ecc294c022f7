package blackotp

import "errors"

// Pad resolution errors
var (
	// ErrNoPadID indicates the transcript carries no id to find its pad by.
	ErrNoPadID = errors.New("transcript has no pad id")

	// ErrInvalidPadID indicates an id that is not a run of decimal digits.
	ErrInvalidPadID = errors.New("pad id must be decimal digits")

	// ErrUnknownPad indicates no manifest entry or pad directory covers the id.
	ErrUnknownPad = errors.New("no pad for id")
)

// PadError wraps a pad failure with the transcript id it was decoding.
type PadError struct {
	ID  string // Transcript id
	Err error  // Underlying error
}

func (e *PadError) Error() string {
	return "pad " + e.ID + ": " + e.Err.Error()
}

func (e *PadError) Unwrap() error {
	return e.Err
}
