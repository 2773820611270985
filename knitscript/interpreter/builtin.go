package interpreter

import (
	"github.com/smarthome-go/knitscript/knitscript/chart"
	"github.com/smarthome-go/knitscript/knitscript/errors"
	"github.com/smarthome-go/knitscript/knitscript/runtime/value"
)

type ParamType uint8

const (
	ChartParam ParamType = iota
	NumberParam
	StringParam
	BoolParam
	AnyParam
)

func (self ParamType) String() string {
	switch self {
	case ChartParam:
		return "chart"
	case NumberParam:
		return "number"
	case StringParam:
		return "string"
	case BoolParam:
		return "bool"
	case AnyParam:
		return "any"
	default:
		panic("A new ParamType was added without updating this code")
	}
}

func (self ParamType) Accepts(kind value.ValueKind) bool {
	switch self {
	case ChartParam:
		return kind == value.ChartValueKind
	case NumberParam:
		return kind == value.IntValueKind
	case StringParam:
		return kind == value.StringValueKind
	case BoolParam:
		return kind == value.BoolValueKind
	case AnyParam:
		return true
	default:
		panic("A new ParamType was added without updating this code")
	}
}

// ParamDesc declares one parameter of a builtin.
// A nil `Default` makes the parameter required.
type ParamDesc struct {
	Name    string
	Type    ParamType
	Default value.Value
}

func Param(name string, typ ParamType) ParamDesc {
	return ParamDesc{Name: name, Type: typ}
}

func OptionalParam(name string, typ ParamType, defaultValue value.Value) ParamDesc {
	return ParamDesc{Name: name, Type: typ, Default: defaultValue}
}

func (self ParamDesc) IsRequired() bool { return self.Default == nil }

type BuiltinFunc func(executor Executor, span errors.Span, params Params) (value.Value, *errors.Error)

type Builtin struct {
	Name   string
	Params []ParamDesc
	Func   BuiltinFunc
}

func (self Builtin) param(name string) (ParamDesc, bool) {
	for _, param := range self.Params {
		if param.Name == name {
			return param, true
		}
	}
	return ParamDesc{}, false
}

func (self Builtin) paramNames() []string {
	names := make([]string, 0, len(self.Params))
	for _, param := range self.Params {
		names = append(names, param.Name)
	}
	return names
}

//
// Resolved parameters
//

// Params maps parameter names to their bound values.
// By the time a builtin is invoked, every declared parameter is present and has the declared type.
type Params map[string]value.Value

func (self Params) Get(name string) value.Value {
	val, found := self[name]
	if !found {
		return value.NewValueNull()
	}
	return val
}

func (self Params) GetString(name string) string {
	if val, ok := self[name].(value.ValueString); ok {
		return val.Inner
	}
	return ""
}

func (self Params) GetInt(name string) int64 {
	if val, ok := self[name].(value.ValueInt); ok {
		return val.Inner
	}
	return 0
}

func (self Params) GetBool(name string) bool {
	if val, ok := self[name].(value.ValueBool); ok {
		return val.Inner
	}
	return false
}

func (self Params) GetChart(name string) *chart.Chart {
	if val, ok := self[name].(value.ValueChart); ok {
		return val.Inner
	}
	return nil
}
