package transcript

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// parseState is a position in the transcript grammar.
type parseState int

const (
	expectPrefix parseState = iota
	expectIDOrGap
	expectFileStart
	expectDigits
	expectOffset
	done
)

// Parse reads text as a transcript.
//
// The accepted form is, case-insensitively:
//
//	[ ("black otp" | "otp black") " "+ id blanks "file start" blanks ]
//	[ number (blanks number)* ]
//	[ blanks* "offset " remainder ]
//
// where blanks are spaces or newlines, id is zero or more digits, and the
// whole text must be consumed apart from one final newline. Missing parts
// default to an empty id, no numbers and no offset.
func Parse(text string) (Transcript, error) {
	if text == "" {
		return Transcript{}, &ParseError{Text: text}
	}

	p := &parser{
		text: text,
		fold: cases.Fold(),
		t:    Transcript{Numbers: []int{}, ID: ""},
	}

	state := expectPrefix
	for state != done {
		next, ok := p.step(state)
		if !ok {
			return Transcript{}, p.fail()
		}
		state = next
	}

	if !p.atEnd() {
		return Transcript{}, p.fail()
	}
	return p.t, nil
}

// MustParse is like Parse but panics if text is not a transcript.
func MustParse(text string) Transcript {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return t
}

type parser struct {
	text string
	pos  int
	fold cases.Caser
	t    Transcript
	err  error // conversion failure behind a rejected match
}

func (p *parser) fail() error {
	return &ParseError{Text: p.text, Err: p.err}
}

func (p *parser) step(state parseState) (parseState, bool) {
	switch state {
	case expectPrefix:
		return p.prefix(), true
	case expectIDOrGap:
		return expectFileStart, p.idOrGap()
	case expectFileStart:
		return expectDigits, p.fileStart()
	case expectDigits:
		return expectOffset, p.digits()
	case expectOffset:
		return done, p.offset()
	default:
		return done, false
	}
}

// prefix consumes the keyword pair if present. Without it the header is
// skipped entirely: no remaining segment can start with "black" or "otp".
func (p *parser) prefix() parseState {
	if p.keyword("black otp") || p.keyword("otp black") {
		return expectIDOrGap
	}
	return expectDigits
}

// idOrGap consumes " "+ id blanks+. With no id digits the two runs share
// one gap, which then needs a leading space and at least two characters.
func (p *parser) idOrGap() bool {
	spaces := p.run(isSpace)
	if spaces == 0 {
		return false
	}
	start := p.pos
	p.run(isDigit)
	id := p.text[start:p.pos]
	gap := p.run(isBlank)
	if id == "" {
		if spaces+gap < 2 {
			return false
		}
	} else if gap == 0 {
		return false
	}
	p.t.ID = id
	return true
}

func (p *parser) fileStart() bool {
	if !p.keyword("file start") {
		return false
	}
	return p.run(isBlank) > 0
}

// digits consumes number (blanks+ number)*. Blanks after the last number
// are left for the offset segment.
func (p *parser) digits() bool {
	if !p.number() {
		return p.err == nil
	}
	for {
		mark := p.pos
		if p.run(isBlank) == 0 {
			return true
		}
		if !p.number() {
			p.pos = mark
			return p.err == nil
		}
	}
}

func (p *parser) number() bool {
	start := p.pos
	if p.run(isDigit) == 0 {
		return false
	}
	n, err := strconv.Atoi(p.text[start:p.pos])
	if err != nil {
		p.err = err
		return false
	}
	p.t.Numbers = append(p.t.Numbers, n)
	return true
}

// offset consumes blanks* "offset " remainder. The remainder runs to the
// end of the text, minus one final newline, and may not span lines.
func (p *parser) offset() bool {
	mark := p.pos
	p.run(isBlank)
	if !p.keyword("offset ") {
		p.pos = mark
		return true
	}

	rest := strings.TrimSuffix(p.text[p.pos:], "\n")
	if rest == "" || strings.Contains(rest, "\n") {
		return false
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		p.err = err
		return false
	}
	p.t.Offset = &n
	p.pos = len(p.text)
	return true
}

// atEnd reports whether only an optional final newline remains.
func (p *parser) atEnd() bool {
	rest := len(p.text) - p.pos
	return rest == 0 || (rest == 1 && p.text[p.pos] == '\n')
}

// keyword consumes kw if the text at the current position matches it case
// insensitively. A rune matches when it folds to the keyword rune, or when
// its simple lower or upper case mapping agrees with the keyword's, so
// U+0130 and U+0131 both match 'i'. kw must be lower case.
func (p *parser) keyword(kw string) bool {
	pos := p.pos
	for _, want := range kw {
		if pos >= len(p.text) {
			return false
		}
		r, size := utf8.DecodeRuneInString(p.text[pos:])
		if r != want && !p.sameLetter(r, want) {
			return false
		}
		pos += size
	}
	p.pos = pos
	return true
}

func (p *parser) sameLetter(r, want rune) bool {
	return p.fold.String(string(r)) == string(want) ||
		unicode.ToLower(r) == want ||
		unicode.ToUpper(r) == unicode.ToUpper(want)
}

// run consumes bytes matching fn and returns how many it consumed.
func (p *parser) run(fn func(byte) bool) int {
	start := p.pos
	for p.pos < len(p.text) && fn(p.text[p.pos]) {
		p.pos++
	}
	return p.pos - start
}

func isSpace(c byte) bool { return c == ' ' }
func isBlank(c byte) bool { return c == ' ' || c == '\n' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
