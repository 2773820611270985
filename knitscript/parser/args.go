package parser

import (
	"fmt"

	"github.com/smarthome-go/knitscript/knitscript/errors"
	"github.com/smarthome-go/knitscript/knitscript/parser/ast"
)

// ArgTail = '=' ws Value
func (self *Parser) argTail() (ast.Value, *errors.Error) {
	if err := self.expectChar('='); err != nil {
		return nil, err
	}
	self.skipWhite()
	return self.value()
}

// Arg = Value ws [ ArgTail ]
// If an ArgTail follows, the leading value is the parameter name and has to be an identifier.
func (self *Parser) arg() (ast.Arg, *errors.Error) {
	value, err := self.value()
	if err != nil {
		return ast.Arg{}, err
	}

	self.skipWhite()

	ch, ok := self.reader.PeekChar()
	if !ok || !ast.ArgTailFirst(ch) {
		return ast.Arg{Value: value}, nil
	}

	name, isIdent := value.(ast.Ident)
	if !isIdent {
		return ast.Arg{}, errors.NewError(
			value.Span(),
			fmt.Sprintf("Expected an identifier as parameter name, found %s '%s'", value.Kind(), value),
			errors.SyntaxError,
		)
	}

	tail, err := self.argTail()
	if err != nil {
		return ast.Arg{}, err
	}

	return ast.Arg{Value: tail, Name: &name}, nil
}

// Args = Arg { ws ',' ws Arg }
func (self *Parser) args() (ast.Args, *errors.Error) {
	args := make(ast.Args, 0)

	for {
		arg, err := self.arg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		self.skipWhite()
		ch, ok := self.reader.PeekChar()
		if !ok || !ast.ArgsSeparatorFirst(ch) {
			break
		}
		self.reader.EatChar()
		self.skipWhite()
	}

	return args, nil
}

// Variable = Ident (but not a keyword)
// The identifier has already been read by the caller.
func (self *Parser) variableFrom(node ast.Value) (ast.Variable, *errors.Error) {
	ident, isIdent := node.(ast.Ident)
	if !isIdent {
		return ast.Variable{}, errors.NewError(
			node.Span(),
			fmt.Sprintf("'%s' is a reserved word and cannot be used as a variable name", node),
			errors.SyntaxError,
		)
	}
	return ast.Variable{Ident: ident}, nil
}
