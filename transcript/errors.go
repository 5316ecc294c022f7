package transcript

import (
	"errors"
	"fmt"
	"strings"
)

// Transcript errors.
var (
	// ErrCannotParse indicates text is not a valid transcript.
	ErrCannotParse = errors.New("cannot parse transcript")

	// ErrCannotRender indicates a Transcript has fields that cannot be rendered.
	ErrCannotRender = errors.New("cannot render transcript")
)

// ParseError reports text that could not be parsed as a transcript.
type ParseError struct {
	Text string // The offending text
	Err  error  // Conversion failure, if the grammar matched but a value did not
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s: %q", ErrCannotParse.Error(), e.Text)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns both the sentinel and the conversion cause so that
// errors.Is works for either.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrCannotParse, e.Err}
	}
	return []error{ErrCannotParse}
}

// RenderError reports every defect that kept a Transcript from rendering.
type RenderError struct {
	Transcript Transcript
	Defects    []string
}

func (e *RenderError) Error() string {
	return strings.Join(e.Defects, ", ")
}

func (e *RenderError) Unwrap() error {
	return ErrCannotRender
}
