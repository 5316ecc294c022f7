package transcript

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Canonical header written by Render.
const header = "black otp "

// Transcript is the parsed content of one black OTP message.
//
// Fields are not validated on construction; Render reports anything that
// cannot be written out.
type Transcript struct {
	// Numbers are the message bytes. Valid values lie in [0, 255].
	Numbers []int

	// Offset is the pad offset, or nil when the message names none.
	Offset *int

	// ID identifies the pad. It must be a string or an integer; the empty
	// string means the text carried no id.
	ID any
}

// New creates a Transcript with the given fields.
func New(numbers []int, offset *int, id any) Transcript {
	return Transcript{Numbers: numbers, Offset: offset, ID: id}
}

// IntPtr returns a pointer to v, for filling Transcript.Offset.
func IntPtr(v int) *int {
	return &v
}

// Defects lists everything that would keep t from rendering, in check order.
func (t Transcript) Defects() []string {
	var defects []string
	if _, ok := idText(t.ID); !ok {
		defects = append(defects, fmt.Sprintf("invalid otp id %#v", t.ID))
	}
	if t.Offset != nil && *t.Offset < 0 {
		defects = append(defects, fmt.Sprintf("invalid offset %d", *t.Offset))
	}
	for _, n := range t.Numbers {
		if n < 0 || n > 255 {
			defects = append(defects, "one or more invalid numbers")
			break
		}
	}
	return defects
}

// Render writes t in canonical form:
//
//	black otp {id} file start {numbers} offset {offset}
//
// The offset segment is left out when Offset is nil.
func (t Transcript) Render() (string, error) {
	if defects := t.Defects(); len(defects) > 0 {
		return "", &RenderError{Transcript: t, Defects: defects}
	}

	id, _ := idText(t.ID)

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString(id)
	sb.WriteString(" file start ")
	for i, n := range t.Numbers {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(n))
	}
	if t.Offset != nil {
		if len(t.Numbers) > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("offset ")
		sb.WriteString(strconv.Itoa(*t.Offset))
	}
	return sb.String(), nil
}

// String renders t, falling back to the defect list when t is invalid.
func (t Transcript) String() string {
	s, err := t.Render()
	if err != nil {
		return "invalid transcript: " + err.Error()
	}
	return s
}

// Bytes returns Numbers as bytes for decoding.
func (t Transcript) Bytes() ([]byte, error) {
	out := make([]byte, len(t.Numbers))
	for i, n := range t.Numbers {
		if n < 0 || n > 255 {
			return nil, &RenderError{Transcript: t, Defects: []string{"one or more invalid numbers"}}
		}
		out[i] = byte(n)
	}
	return out, nil
}

// IDString returns the id as text, or "" when the id is not a string or integer.
func (t Transcript) IDString() string {
	s, _ := idText(t.ID)
	return s
}

// Equal reports whether t and other hold the same numbers, offset and id.
// Ids are compared by their text, so ID 1 equals ID "1".
func (t Transcript) Equal(other Transcript) bool {
	if !slices.Equal(t.Numbers, other.Numbers) {
		return false
	}
	if (t.Offset == nil) != (other.Offset == nil) {
		return false
	}
	if t.Offset != nil && *t.Offset != *other.Offset {
		return false
	}
	a, aok := idText(t.ID)
	b, bok := idText(other.ID)
	return aok == bok && a == b
}

func idText(id any) (string, bool) {
	switch v := id.(type) {
	case string:
		return v, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}
