package interpreter

import (
	"github.com/smarthome-go/knitscript/knitscript/errors"
	"github.com/smarthome-go/knitscript/knitscript/parser/ast"
)

type Interpreter struct {
	registry *Registry
	executor Executor
	context  *Context
	// If set, a failing statement is reported and execution resumes with the next one.
	keepGoing bool
}

func NewInterpreter(registry *Registry, executor Executor, keepGoing bool) Interpreter {
	return Interpreter{
		registry:  registry,
		executor:  executor,
		context:   NewContext(),
		keepGoing: keepGoing,
	}
}

func (self *Interpreter) Context() *Context { return self.context }

func (self *Interpreter) Execute(program ast.Program) []errors.Error {
	errs := make([]errors.Error, 0)

	for _, stmt := range program.Statements {
		if err := self.statement(stmt); err != nil {
			errs = append(errs, *err)
			if !self.keepGoing {
				break
			}
		}
	}

	return errs
}

func (self *Interpreter) statement(node ast.Statement) *errors.Error {
	switch node := node.(type) {
	case ast.AssignStatement:
		result, err := self.registry.Call(self.executor, node.Call, self.context)
		if err != nil {
			return err
		}
		self.context.Assign(node.Target.Name(), result)
		return nil
	case ast.CallStatement:
		_, err := self.registry.Call(self.executor, node.Call, self.context)
		return err
	default:
		panic("A new ast.Statement was added without updating this code")
	}
}
