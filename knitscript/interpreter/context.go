package interpreter

import (
	"sort"

	"github.com/smarthome-go/knitscript/knitscript/runtime/value"
)

// Context holds the variables of one program execution.
type Context struct {
	variables map[string]value.Value
}

func NewContext() *Context {
	return &Context{variables: make(map[string]value.Value)}
}

// Assign creates or overwrites a variable.
func (self *Context) Assign(name string, val value.Value) {
	self.variables[name] = val
}

func (self *Context) Get(name string) (value.Value, bool) {
	val, found := self.variables[name]
	return val, found
}

func (self *Context) Names() []string {
	names := make([]string, 0, len(self.variables))
	for name := range self.variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
