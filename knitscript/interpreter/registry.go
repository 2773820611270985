package interpreter

import (
	stderrors "errors"
	"fmt"
	"sort"
)

var (
	ErrDuplicateBuiltin   = stderrors.New("duplicate builtin")
	ErrDuplicateParam     = stderrors.New("duplicate parameter")
	ErrNonTrailingDefault = stderrors.New("parameters with defaults must come at the end of the parameter list")
	ErrDefaultType        = stderrors.New("default value does not match the parameter type")
	ErrMissingFunc        = stderrors.New("builtin has no implementation")
)

// RegistryBuilder collects builtin declarations.
// Declarations never depend on user input, so every problem reported by `Build` is a programming error.
type RegistryBuilder struct {
	builtins []Builtin
}

func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{builtins: make([]Builtin, 0)}
}

func (self *RegistryBuilder) Register(builtins ...Builtin) *RegistryBuilder {
	self.builtins = append(self.builtins, builtins...)
	return self
}

func (self *RegistryBuilder) Build() (*Registry, error) {
	registry := Registry{
		builtins: make(map[string]Builtin, len(self.builtins)),
	}

	for _, builtin := range self.builtins {
		if _, exists := registry.builtins[builtin.Name]; exists {
			return nil, fmt.Errorf("%w: '%s'", ErrDuplicateBuiltin, builtin.Name)
		}
		if err := validate(builtin); err != nil {
			return nil, fmt.Errorf("invalid builtin '%s': %w", builtin.Name, err)
		}
		registry.builtins[builtin.Name] = builtin
	}

	return &registry, nil
}

func (self *RegistryBuilder) MustBuild() *Registry {
	registry, err := self.Build()
	if err != nil {
		panic(err.Error())
	}
	return registry
}

func validate(builtin Builtin) error {
	if builtin.Func == nil {
		return ErrMissingFunc
	}

	seen := make(map[string]struct{}, len(builtin.Params))
	hasDefault := false

	for _, param := range builtin.Params {
		if _, exists := seen[param.Name]; exists {
			return fmt.Errorf("%w: '%s'", ErrDuplicateParam, param.Name)
		}
		seen[param.Name] = struct{}{}

		if param.Default == nil {
			if hasDefault {
				return fmt.Errorf("%w: '%s' has no default", ErrNonTrailingDefault, param.Name)
			}
			continue
		}

		hasDefault = true
		if !param.Type.Accepts(param.Default.Kind()) {
			return fmt.Errorf(
				"%w: '%s' is declared as %s but defaults to a %s",
				ErrDefaultType,
				param.Name,
				param.Type,
				param.Default.Kind(),
			)
		}
	}

	return nil
}

// Registry is the immutable table of builtins.
// It is safe for concurrent use.
type Registry struct {
	builtins map[string]Builtin
}

func (self *Registry) Lookup(name string) (Builtin, bool) {
	builtin, found := self.builtins[name]
	return builtin, found
}

func (self *Registry) Names() []string {
	names := make([]string, 0, len(self.builtins))
	for name := range self.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtins returns all builtins sorted by name.
func (self *Registry) Builtins() []Builtin {
	builtins := make([]Builtin, 0, len(self.builtins))
	for _, name := range self.Names() {
		builtins = append(builtins, self.builtins[name])
	}
	return builtins
}
