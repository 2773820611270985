// Package knitscript parses and runs knitscript programs:
// sequences of builtin calls, optionally assigned to variables, which transform knitting charts.
//
//	chart = read("file.knit")
//	padded = pad(chart, pad_size=5)
//	write(padded, "padded.knit")
package knitscript

import (
	"github.com/smarthome-go/knitscript/knitscript/errors"
	"github.com/smarthome-go/knitscript/knitscript/interpreter"
	"github.com/smarthome-go/knitscript/knitscript/parser"
	"github.com/smarthome-go/knitscript/knitscript/parser/ast"
	"github.com/smarthome-go/knitscript/knitscript/reader"
)

func Parse(program string, filename string) (ast.Program, *errors.Error) {
	p := parser.NewParser(reader.FromString(program), filename)
	return p.Parse()
}

// Executes the given knitscript code.
// If `keepGoing` is set, statements after a failing one are still executed.
// All errors are returned in the order they occurred, a syntax error is always the only one.
func Run(
	executor interpreter.Executor,
	registry *interpreter.Registry,
	program string,
	filename string,
	keepGoing bool,
) (*interpreter.Context, []errors.Error) {
	tree, err := Parse(program, filename)
	if err != nil {
		return interpreter.NewContext(), []errors.Error{*err}
	}

	runner := interpreter.NewInterpreter(registry, executor, keepGoing)
	errs := runner.Execute(tree)
	return runner.Context(), errs
}
