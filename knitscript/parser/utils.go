package parser

import (
	"fmt"
	"math"
	"strconv"
	"unicode"

	"github.com/smarthome-go/knitscript/knitscript/errors"
	"github.com/smarthome-go/knitscript/knitscript/parser/ast"
)

func (self *Parser) skipWhite() {
	for {
		ch, ok := self.reader.PeekChar()
		if !ok || !unicode.IsSpace(ch) {
			return
		}
		self.reader.EatChar()
	}
}

// Skips whitespace, statement separators and comments between statements.
func (self *Parser) skipTrivia() {
	for {
		self.skipWhite()

		ch, ok := self.reader.PeekChar()
		switch {
		case !ok:
			return
		case ast.StatementSeparatorFirst(ch):
			self.reader.EatChar()
		case ast.CommentFirst(ch):
			for {
				ch, ok := self.reader.NextChar()
				if !ok || ch == '\n' {
					break
				}
			}
		default:
			return
		}
	}
}

func (self *Parser) expectStatementEnd() *errors.Error {
	ch, ok := self.reader.PeekChar()
	if !ok || unicode.IsSpace(ch) || ast.StatementSeparatorFirst(ch) || ast.CommentFirst(ch) {
		return nil
	}
	return errors.NewSyntaxError(
		self.reader.Location(),
		fmt.Sprintf("Expected a newline or ';' after statement, found %s", displayChar(ch)),
	)
}

// Consumes `expected` or fails without consuming anything.
func (self *Parser) expectChar(expected rune) *errors.Error {
	ch, ok := self.reader.PeekChar()
	if !ok {
		return self.eofErr(displayChar(expected))
	}
	if ch != expected {
		return errors.NewSyntaxError(
			self.reader.Location(),
			fmt.Sprintf("Expected %s, found %s", displayChar(expected), displayChar(ch)),
		)
	}
	self.reader.EatChar()
	return nil
}

func (self *Parser) eofErr(expected string) *errors.Error {
	return errors.NewErrorAt(
		self.reader.Location(),
		fmt.Sprintf("Expected %s, found end of input", expected),
		errors.UnexpectedEOFError,
	)
}

func (self *Parser) overflowErr() *errors.Error {
	return errors.NewErrorAt(
		self.reader.Location(),
		fmt.Sprintf("Input is too large: rows and columns are limited to %d", math.MaxUint16),
		errors.SourceLimitError,
	)
}

// Builds the span from `start` up to the current location.
func (self *Parser) span(start errors.Location) (errors.Span, *errors.Error) {
	if self.reader.Overflowed() {
		return errors.Span{}, self.overflowErr()
	}
	span, err := errors.NewSpan(start, self.reader.Location())
	if err != nil {
		return errors.Span{}, errors.NewSyntaxError(start, fmt.Sprintf("Internal parser error: %s", err.Error()))
	}
	return span, nil
}

func displayChar(ch rune) string {
	return strconv.QuoteRune(ch)
}
