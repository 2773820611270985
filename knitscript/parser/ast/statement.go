package ast

import (
	"fmt"
	"strings"

	"github.com/smarthome-go/knitscript/knitscript/errors"
)

//
// Call
//

type Call struct {
	Func  Ident
	Args  Args
	Range errors.Span
}

func (self Call) Span() errors.Span { return self.Range }
func (self Call) String() string {
	return fmt.Sprintf("%s(%s)", self.Func.Value, self.Args)
}

//
// Statements
//

type Statement interface {
	Kind() StatementKind
	Span() errors.Span
	String() string
}

type StatementKind uint8

const (
	AssignStatementKind StatementKind = iota
	CallStatementKind
)

type AssignStatement struct {
	Target Variable
	Call   Call
	Range  errors.Span
}

func (self AssignStatement) Kind() StatementKind { return AssignStatementKind }
func (self AssignStatement) Span() errors.Span   { return self.Range }
func (self AssignStatement) String() string {
	return fmt.Sprintf("%s = %s", self.Target, self.Call)
}

type CallStatement struct {
	Call Call
}

func (self CallStatement) Kind() StatementKind { return CallStatementKind }
func (self CallStatement) Span() errors.Span   { return self.Call.Range }
func (self CallStatement) String() string      { return self.Call.String() }

//
// Program
//

type Program struct {
	Statements []Statement
	Filename   string
}

func (self Program) String() string {
	lines := make([]string, 0, len(self.Statements))
	for _, stmt := range self.Statements {
		lines = append(lines, stmt.String())
	}
	return strings.Join(lines, "\n")
}
