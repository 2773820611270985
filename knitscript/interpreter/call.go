package interpreter

import (
	"fmt"

	"github.com/smarthome-go/knitscript/knitscript/errors"
	"github.com/smarthome-go/knitscript/knitscript/parser/ast"
	"github.com/smarthome-go/knitscript/knitscript/runtime/value"
)

// Call binds the arguments of `call` to the parameters of the builtin it names and invokes it.
// Identifiers among the arguments are resolved using `scope`.
func (self *Registry) Call(executor Executor, call ast.Call, scope value.Scope) (value.Value, *errors.Error) {
	builtin, found := self.Lookup(call.Func.Value)
	if !found {
		return nil, errors.NewError(
			call.Func.Range,
			fmt.Sprintf("Unknown function '%s'", call.Func.Value),
			errors.UnknownFuncError,
		).WithNotes(value.Suggest(call.Func.Value, self.Names())...)
	}

	invocation := newInvocation(builtin, call, scope)

	positional := call.Args.Positional()
	for idx, arg := range positional {
		if err := invocation.assignPositional(idx, len(positional), arg); err != nil {
			return nil, err
		}
	}

	for _, arg := range call.Args.Named() {
		if err := invocation.assignNamed(arg); err != nil {
			return nil, err
		}
	}

	if err := invocation.complete(); err != nil {
		return nil, err
	}

	return invocation.invoke(executor)
}

type invocation struct {
	builtin Builtin
	call    ast.Call
	scope   value.Scope
	params  Params
	// Where each parameter was bound, used to report duplicates.
	boundAt map[string]errors.Span
}

func newInvocation(builtin Builtin, call ast.Call, scope value.Scope) invocation {
	return invocation{
		builtin: builtin,
		call:    call,
		scope:   scope,
		params:  make(Params, len(builtin.Params)),
		boundAt: make(map[string]errors.Span, len(builtin.Params)),
	}
}

func (self *invocation) assignPositional(idx int, count int, arg ast.Arg) *errors.Error {
	if idx >= len(self.builtin.Params) {
		s := ""
		if len(self.builtin.Params) != 1 {
			s = "s"
		}
		return errors.NewError(
			arg.Span(),
			fmt.Sprintf(
				"Too many arguments provided to function '%s': expected at most %d argument%s, got %d",
				self.builtin.Name,
				len(self.builtin.Params),
				s,
				count,
			),
			errors.TooManyArgumentsError,
		)
	}

	return self.bind(self.builtin.Params[idx], arg)
}

func (self *invocation) assignNamed(arg ast.Arg) *errors.Error {
	param, found := self.builtin.param(arg.Name.Value)
	if !found {
		return errors.NewError(
			arg.Name.Range,
			fmt.Sprintf("Unknown parameter '%s' provided for call to '%s'", arg.Name.Value, self.builtin.Name),
			errors.UnknownParamError,
		).WithNotes(value.Suggest(arg.Name.Value, self.builtin.paramNames())...)
	}

	return self.bind(param, arg)
}

func (self *invocation) bind(param ParamDesc, arg ast.Arg) *errors.Error {
	if previous, bound := self.boundAt[param.Name]; bound {
		return errors.NewError(
			arg.Span(),
			fmt.Sprintf("Parameter '%s' of function '%s' was already bound at %s", param.Name, self.builtin.Name, previous.Start),
			errors.DuplicateArgumentError,
		)
	}

	val, err := value.FromNode(arg.Value, self.scope)
	if err != nil {
		return err
	}

	if !param.Type.Accepts(val.Kind()) {
		return errors.NewError(
			arg.Value.Span(),
			fmt.Sprintf(
				"Parameter '%s' of function '%s' expects a %s, found %s",
				param.Name,
				self.builtin.Name,
				param.Type,
				val.Kind(),
			),
			errors.TypeError,
		)
	}

	self.params[param.Name] = val
	self.boundAt[param.Name] = arg.Span()
	return nil
}

// Applies defaults and makes sure every required parameter was supplied.
func (self *invocation) complete() *errors.Error {
	missing := make([]string, 0)

	for _, param := range self.builtin.Params {
		if _, bound := self.params[param.Name]; bound {
			continue
		}
		if param.IsRequired() {
			missing = append(missing, fmt.Sprintf("'%s'", param.Name))
			continue
		}
		self.params[param.Name] = param.Default
	}

	if len(missing) == 0 {
		return nil
	}

	s := ""
	if len(missing) != 1 {
		s = "s"
	}
	return errors.NewError(
		self.call.Range,
		fmt.Sprintf("Missing required argument%s %s for call to '%s'", s, joinAnd(missing), self.builtin.Name),
		errors.MissingArgumentError,
	)
}

func (self *invocation) invoke(executor Executor) (value.Value, *errors.Error) {
	result, err := self.builtin.Func(executor, self.call.Range, self.params)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return value.NewValueNull(), nil
	}
	return result, nil
}

func joinAnd(items []string) string {
	out := ""
	for idx, item := range items {
		switch {
		case idx == 0:
		case idx == len(items)-1:
			out += " and "
		default:
			out += ", "
		}
		out += item
	}
	return out
}
