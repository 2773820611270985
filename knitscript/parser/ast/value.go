package ast

import (
	"fmt"

	"github.com/smarthome-go/knitscript/knitscript/errors"
)

type Value interface {
	Kind() ValueKind
	Span() errors.Span
	String() string
}

type ValueKind uint8

const (
	IdentValueKind ValueKind = iota
	NumberValueKind
	StringValueKind
	BoolValueKind
)

func (self ValueKind) String() string {
	switch self {
	case IdentValueKind:
		return "identifier"
	case NumberValueKind:
		return "number"
	case StringValueKind:
		return "string"
	case BoolValueKind:
		return "bool"
	default:
		panic("A new ValueKind was added without updating this code")
	}
}

//
// Ident
//

type Ident struct {
	Value string
	Range errors.Span
}

func (self Ident) Kind() ValueKind   { return IdentValueKind }
func (self Ident) Span() errors.Span { return self.Range }
func (self Ident) String() string    { return self.Value }

//
// Number constant
//

type Number struct {
	Value int32
	Range errors.Span
}

func (self Number) Kind() ValueKind   { return NumberValueKind }
func (self Number) Span() errors.Span { return self.Range }
func (self Number) String() string    { return fmt.Sprint(self.Value) }

//
// String constant
//

type String struct {
	Value string
	Range errors.Span
}

func (self String) Kind() ValueKind   { return StringValueKind }
func (self String) Span() errors.Span { return self.Range }
func (self String) String() string    { return fmt.Sprintf("\"%s\"", self.Value) }

//
// Bool
//

type Bool struct {
	Value bool
	Range errors.Span
}

func (self Bool) Kind() ValueKind   { return BoolValueKind }
func (self Bool) Span() errors.Span { return self.Range }
func (self Bool) String() string    { return fmt.Sprint(self.Value) }
