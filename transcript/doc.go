// Package transcript parses and renders black OTP message transcripts.
//
// A transcript is the text a person types when copying down a black OTP
// message: an optional "black otp <id> file start" header, the message bytes
// as decimal numbers, and an optional "offset <n>" trailer naming where in
// the pad decoding starts.
//
// Core types:
//   - Transcript: numbers, optional offset and id of one message
//   - ParseError: text that is not a transcript
//   - RenderError: a Transcript that cannot be written in canonical form
//
// Example usage:
//
//	t, err := transcript.Parse("black otp 1 file start 65 65 offset 999")
//	// t.Numbers == []int{65, 65}, *t.Offset == 999, t.ID == "1"
//
//	text, err := t.Render()
//	// "black otp 1 file start 65 65 offset 999"
//
// Parsing is case-insensitive and accepts newlines anywhere a blank
// separates tokens, so multi-line transcripts work. When the id is left
// out the header still needs two blanks between "otp" and "file":
// "black otp file start 1 2" is rejected, "black otp  file start 1 2" is
// accepted with an empty id.
package transcript
