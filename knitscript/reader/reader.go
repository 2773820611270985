package reader

import (
	"io"

	"github.com/smarthome-go/knitscript/knitscript/errors"
)

// SpanningRead is a character source which knows the location of every character it hands out.
type SpanningRead interface {
	// Location of the next character.
	// After EOF, this is the location one past the last character.
	Location() errors.Location
	// Returns the next character without consuming it.
	// `ok` is false at EOF.
	PeekChar() (ch rune, ok bool)
	// Consumes and returns the next character.
	NextChar() (ch rune, ok bool)
	// Consumes the next character. No-op at EOF.
	EatChar()
	EOF() bool
	// Reports whether a consumed character lay beyond the last representable row or column.
	// Once set, `Location` stays at the last representable location.
	Overflowed() bool
}

type SpanningReader struct {
	input      []rune
	index      int
	location   errors.Location
	overflowed bool
}

func NewSpanningReader(source io.Reader) (*SpanningReader, error) {
	content, err := io.ReadAll(source)
	if err != nil {
		return nil, err
	}
	return FromString(string(content)), nil
}

func FromString(input string) *SpanningReader {
	return &SpanningReader{
		input:      []rune(input),
		index:      0,
		location:   errors.StartLocation(),
		overflowed: false,
	}
}

func (self *SpanningReader) Location() errors.Location { return self.location }

func (self *SpanningReader) PeekChar() (rune, bool) {
	if self.EOF() {
		return 0, false
	}
	return self.input[self.index], true
}

func (self *SpanningReader) NextChar() (rune, bool) {
	ch, ok := self.PeekChar()
	self.EatChar()
	return ch, ok
}

func (self *SpanningReader) EatChar() {
	if self.EOF() {
		return
	}

	ch := self.input[self.index]
	self.index += 1

	var advanced bool
	if ch == '\n' {
		advanced = self.location.NextRow()
	} else {
		advanced = self.location.NextCol()
	}
	if !advanced {
		self.overflowed = true
	}
}

func (self *SpanningReader) Overflowed() bool { return self.overflowed }

func (self *SpanningReader) EOF() bool {
	return self.index >= len(self.input)
}
