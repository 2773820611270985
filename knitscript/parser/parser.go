package parser

import (
	"github.com/smarthome-go/knitscript/knitscript/errors"
	"github.com/smarthome-go/knitscript/knitscript/parser/ast"
	"github.com/smarthome-go/knitscript/knitscript/reader"
)

// Parser is a recursive-descent parser working directly on characters.
// Every production dispatches by testing the next character against the first sets in the `ast` package.
type Parser struct {
	reader   reader.SpanningRead
	Filename string
}

func NewParser(sr reader.SpanningRead, filename string) Parser {
	return Parser{
		reader:   sr,
		Filename: filename,
	}
}

func (self *Parser) Parse() (ast.Program, *errors.Error) {
	return self.program()
}

func (self *Parser) program() (ast.Program, *errors.Error) {
	tree := ast.Program{
		Statements: make([]ast.Statement, 0),
		Filename:   self.Filename,
	}

	for {
		self.skipTrivia()
		if self.reader.Overflowed() {
			return ast.Program{}, self.overflowErr()
		}
		if self.reader.EOF() {
			break
		}

		stmt, err := self.statement()
		if err != nil {
			return ast.Program{}, err
		}
		tree.Statements = append(tree.Statements, stmt)

		if err := self.expectStatementEnd(); err != nil {
			return ast.Program{}, err
		}
	}

	return tree, nil
}

// Statement = Ident ws ( CallTail | '=' ws Call )
func (self *Parser) statement() (ast.Statement, *errors.Error) {
	head, err := self.ident()
	if err != nil {
		return nil, err
	}

	self.skipWhite()

	ch, ok := self.reader.PeekChar()
	switch {
	case !ok:
		return nil, self.eofErr("either '(' or '='")
	case ast.CallTailFirst(ch):
		name, err := self.funcName(head)
		if err != nil {
			return nil, err
		}
		call, err := self.callTail(name)
		if err != nil {
			return nil, err
		}
		return ast.CallStatement{Call: call}, nil
	case ast.ArgTailFirst(ch):
		target, err := self.variableFrom(head)
		if err != nil {
			return nil, err
		}
		self.reader.EatChar()
		self.skipWhite()

		call, err := self.call()
		if err != nil {
			return nil, err
		}

		span, err := self.span(target.Span().Start)
		if err != nil {
			return nil, err
		}

		return ast.AssignStatement{
			Target: target,
			Call:   call,
			Range:  span,
		}, nil
	default:
		return nil, errors.NewSyntaxError(
			self.reader.Location(),
			"Expected either '(' or '=', found "+displayChar(ch),
		)
	}
}

// Call = Ident CallTail
func (self *Parser) call() (ast.Call, *errors.Error) {
	head, err := self.ident()
	if err != nil {
		return ast.Call{}, err
	}

	name, err := self.funcName(head)
	if err != nil {
		return ast.Call{}, err
	}

	return self.callTail(name)
}

// CallTail = ws '(' ws [ Args ] ws ')'
func (self *Parser) callTail(name ast.Ident) (ast.Call, *errors.Error) {
	self.skipWhite()
	if err := self.expectChar('('); err != nil {
		return ast.Call{}, err
	}
	self.skipWhite()

	args := make(ast.Args, 0)
	if ch, ok := self.reader.PeekChar(); !ok || ch != ')' {
		parsed, err := self.args()
		if err != nil {
			return ast.Call{}, err
		}
		args = parsed
	}

	self.skipWhite()
	if err := self.expectChar(')'); err != nil {
		return ast.Call{}, err
	}

	span, err := self.span(name.Range.Start)
	if err != nil {
		return ast.Call{}, err
	}

	return ast.Call{
		Func:  name,
		Args:  args,
		Range: span,
	}, nil
}

func (self *Parser) funcName(node ast.Value) (ast.Ident, *errors.Error) {
	ident, isIdent := node.(ast.Ident)
	if !isIdent {
		return ast.Ident{}, errors.NewError(
			node.Span(),
			"'"+node.String()+"' is a reserved word and cannot be used as a function name",
			errors.SyntaxError,
		)
	}
	return ident, nil
}
