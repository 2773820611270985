package ast

import (
	"fmt"
	"strings"

	"github.com/smarthome-go/knitscript/knitscript/errors"
)

//
// Arg
//

// Arg is a single call argument.
// If `Name` is nil, the argument is positional.
type Arg struct {
	Value Value
	Name  *Ident
}

func (self Arg) IsNamed() bool { return self.Name != nil }

func (self Arg) Span() errors.Span {
	if self.Name == nil {
		return self.Value.Span()
	}
	return errors.Span{Start: self.Name.Range.Start, End: self.Value.Span().End}
}

func (self Arg) String() string {
	if self.Name == nil {
		return self.Value.String()
	}
	return fmt.Sprintf("%s=%s", self.Name.Value, self.Value)
}

//
// Args
//

type Args []Arg

// Positional returns the arguments without a name in their original order.
func (self Args) Positional() []Arg {
	positional := make([]Arg, 0, len(self))
	for _, arg := range self {
		if !arg.IsNamed() {
			positional = append(positional, arg)
		}
	}
	return positional
}

// Named returns the named arguments in their original order.
func (self Args) Named() []Arg {
	named := make([]Arg, 0)
	for _, arg := range self {
		if arg.IsNamed() {
			named = append(named, arg)
		}
	}
	return named
}

func (self Args) String() string {
	items := make([]string, 0, len(self))
	for _, arg := range self {
		items = append(items, arg.String())
	}
	return strings.Join(items, ", ")
}

//
// Variable
//

type Variable struct {
	Ident Ident
}

func (self Variable) Name() string      { return self.Ident.Value }
func (self Variable) Span() errors.Span { return self.Ident.Range }
func (self Variable) String() string    { return self.Ident.Value }
