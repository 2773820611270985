package errors

import (
	stderrors "errors"
	"fmt"
	"math"
)

// Location is a 1-based row / column position inside a source text.
// Columns count characters (runes), not bytes.
type Location struct {
	Row uint16 `json:"row"`
	Col uint16 `json:"col"`
}

func NewLocation(row uint16, col uint16) Location {
	return Location{Row: row, Col: col}
}

// StartLocation is the location of the first character of any input.
func StartLocation() Location {
	return Location{Row: 1, Col: 1}
}

// NextRow moves to the first column of the next row.
// At the last representable row the location is left unchanged and false is returned.
func (self *Location) NextRow() bool {
	if self.Row == math.MaxUint16 {
		return false
	}
	self.Row += 1
	self.Col = 1
	return true
}

// NextCol moves to the next column.
// At the last representable column the location is left unchanged and false is returned.
func (self *Location) NextCol() bool {
	if self.Col == math.MaxUint16 {
		return false
	}
	self.Col += 1
	return true
}

func (self Location) Compare(other Location) int {
	switch {
	case self.Row < other.Row:
		return -1
	case self.Row > other.Row:
		return 1
	case self.Col < other.Col:
		return -1
	case self.Col > other.Col:
		return 1
	default:
		return 0
	}
}

func (self Location) Less(other Location) bool { return self.Compare(other) < 0 }

func (self Location) IsZero() bool { return self.Row == 0 && self.Col == 0 }

func (self Location) String() string {
	return fmt.Sprintf("%d:%d", self.Row, self.Col)
}

//
// Span
//

var ErrInvertedSpan = stderrors.New("inverted span")

type InvertedSpanError struct {
	First  Location
	Second Location
}

func (self *InvertedSpanError) Error() string {
	return fmt.Sprintf("Inverted span, start (%s) must come before end (%s)", self.First, self.Second)
}

func (self *InvertedSpanError) Is(target error) bool { return target == ErrInvertedSpan }

// Span is a half-open range [Start, End).
// End is the location after the last character and may point past the end of the input.
type Span struct {
	Start Location `json:"start"`
	End   Location `json:"end"`
}

func NewSpan(start Location, end Location) (Span, error) {
	if !start.Less(end) {
		return Span{}, &InvertedSpanError{First: start, Second: end}
	}
	return Span{Start: start, End: end}, nil
}

func (self Span) IsZero() bool { return self.Start.IsZero() && self.End.IsZero() }

func (self Span) Contains(location Location) bool {
	return !location.Less(self.Start) && location.Less(self.End)
}

func (self Span) String() string {
	return fmt.Sprintf("%s..%s", self.Start, self.End)
}
