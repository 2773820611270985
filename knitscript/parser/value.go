package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smarthome-go/knitscript/knitscript/errors"
	"github.com/smarthome-go/knitscript/knitscript/parser/ast"
)

// Parses an identifier.
// The exact words `true` and `false` are returned as `ast.Bool` instead.
func (self *Parser) ident() (ast.Value, *errors.Error) {
	start := self.reader.Location()

	first, ok := self.reader.PeekChar()
	if !ok {
		return nil, self.eofErr("an identifier")
	}
	if !ast.IdentFirst(first) {
		return nil, errors.NewSyntaxError(
			start,
			fmt.Sprintf("Expected '_' or an alphabetic character, found %s", displayChar(first)),
		)
	}
	self.reader.EatChar()

	var value strings.Builder
	value.WriteRune(first)

	for {
		ch, ok := self.reader.PeekChar()
		if !ok || !ast.IdentRest(ch) {
			break
		}
		value.WriteRune(ch)
		self.reader.EatChar()
	}

	span, err := self.span(start)
	if err != nil {
		return nil, err
	}

	switch value.String() {
	case "true":
		return ast.Bool{Value: true, Range: span}, nil
	case "false":
		return ast.Bool{Value: false, Range: span}, nil
	default:
		return ast.Ident{Value: value.String(), Range: span}, nil
	}
}

// Number = [ '-' ] digit { digit }
func (self *Parser) number() (ast.Number, *errors.Error) {
	start := self.reader.Location()

	first, ok := self.reader.PeekChar()
	if !ok {
		return ast.Number{}, self.eofErr("a number")
	}
	if !ast.NumberFirst(first) {
		return ast.Number{}, errors.NewSyntaxError(
			start,
			fmt.Sprintf("Expected '-' or a digit, found %s", displayChar(first)),
		)
	}
	self.reader.EatChar()

	var text strings.Builder
	text.WriteRune(first)

	if first == '-' {
		ch, ok := self.reader.PeekChar()
		if !ok {
			return ast.Number{}, self.eofErr("a digit after '-'")
		}
		if !ast.IsASCIIDigit(ch) {
			return ast.Number{}, errors.NewSyntaxError(
				self.reader.Location(),
				fmt.Sprintf("Expected a digit after '-', found %s", displayChar(ch)),
			)
		}
	}

	for {
		ch, ok := self.reader.PeekChar()
		if !ok || !ast.IsASCIIDigit(ch) {
			break
		}
		text.WriteRune(ch)
		self.reader.EatChar()
	}

	span, err := self.span(start)
	if err != nil {
		return ast.Number{}, err
	}

	value, parseErr := strconv.ParseInt(text.String(), 10, 32)
	if parseErr != nil {
		reason := parseErr.Error()
		if numErr, ok := parseErr.(*strconv.NumError); ok {
			reason = numErr.Err.Error()
		}
		return ast.Number{}, errors.NewError(
			span,
			fmt.Sprintf("Invalid number '%s': %s", text.String(), reason),
			errors.NumberFormatError,
		)
	}

	return ast.Number{Value: int32(value), Range: span}, nil
}

// String = '"' { any character except '"' } '"'
func (self *Parser) stringConstant() (ast.String, *errors.Error) {
	start := self.reader.Location()

	if err := self.expectChar('"'); err != nil {
		return ast.String{}, err
	}

	var value strings.Builder
	for {
		ch, ok := self.reader.PeekChar()
		if !ok {
			span, err := self.span(start)
			if err != nil {
				return ast.String{}, err
			}
			return ast.String{}, errors.NewError(
				span,
				"String literal was never closed",
				errors.UnexpectedEOFError,
			)
		}
		if ch == '"' {
			break
		}
		value.WriteRune(ch)
		self.reader.EatChar()
	}

	// closing quote
	self.reader.EatChar()

	span, err := self.span(start)
	if err != nil {
		return ast.String{}, err
	}

	return ast.String{Value: value.String(), Range: span}, nil
}

// Value = Number | Ident | Bool | String
func (self *Parser) value() (ast.Value, *errors.Error) {
	ch, ok := self.reader.PeekChar()
	switch {
	case !ok:
		return nil, self.eofErr("a value")
	case !ast.ValueFirst(ch):
		return nil, errors.NewSyntaxError(
			self.reader.Location(),
			fmt.Sprintf("Unexpected character %s: expected a number, an identifier or a string", displayChar(ch)),
		)
	case ast.NumberFirst(ch):
		return self.number()
	case ast.IdentFirst(ch):
		return self.ident()
	default:
		return self.stringConstant()
	}
}
