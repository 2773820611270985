package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarthome-go/knitscript/knitscript/errors"
	"github.com/smarthome-go/knitscript/knitscript/runtime/value"
)

func noop(executor Executor, span errors.Span, params Params) (value.Value, *errors.Error) {
	return value.NewValueString("FOOBAR"), nil
}

func TestValidRegistries(t *testing.T) {
	tests := []struct {
		name   string
		params []ParamDesc
	}{
		{"single", []ParamDesc{Param("foo", StringParam)}},
		{"only required", []ParamDesc{Param("foo", StringParam), Param("bar", StringParam)}},
		{"only defaults", []ParamDesc{
			OptionalParam("foo", NumberParam, value.NewValueInt(2)),
			OptionalParam("bar", NumberParam, value.NewValueInt(2)),
			OptionalParam("baz", NumberParam, value.NewValueInt(2)),
		}},
		{"defaults after required", []ParamDesc{
			Param("foo", StringParam),
			OptionalParam("baz", NumberParam, value.NewValueInt(2)),
			OptionalParam("bar", StringParam, value.NewValueString("x")),
		}},
		{"no params", nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			registry, err := NewRegistryBuilder().Register(Builtin{
				Name:   "foo",
				Params: test.params,
				Func:   noop,
			}).Build()
			require.NoError(t, err)

			builtin, found := registry.Lookup("foo")
			require.True(t, found)
			assert.Len(t, builtin.Params, len(test.params))
		})
	}
}

func TestInvalidRegistries(t *testing.T) {
	tests := []struct {
		name     string
		builtins []Builtin
		expected error
	}{
		{
			name: "defaults before required",
			builtins: []Builtin{{
				Name: "foo",
				Params: []ParamDesc{
					Param("foo", StringParam),
					OptionalParam("bar", NumberParam, value.NewValueInt(2)),
					Param("baz", StringParam),
				},
				Func: noop,
			}},
			expected: ErrNonTrailingDefault,
		},
		{
			name: "duplicate builtins",
			builtins: []Builtin{
				{Name: "read", Func: noop},
				{Name: "read", Func: noop},
			},
			expected: ErrDuplicateBuiltin,
		},
		{
			name: "duplicate param names",
			builtins: []Builtin{{
				Name:   "foo",
				Params: []ParamDesc{Param("x", StringParam), Param("x", StringParam)},
				Func:   noop,
			}},
			expected: ErrDuplicateParam,
		},
		{
			name: "default type mismatch",
			builtins: []Builtin{{
				Name:   "foo",
				Params: []ParamDesc{OptionalParam("x", ChartParam, value.NewValueInt(1))},
				Func:   noop,
			}},
			expected: ErrDefaultType,
		},
		{
			name:     "missing implementation",
			builtins: []Builtin{{Name: "foo"}},
			expected: ErrMissingFunc,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			builder := NewRegistryBuilder().Register(test.builtins...)

			_, err := builder.Build()
			assert.ErrorIs(t, err, test.expected)

			assert.Panics(t, func() { builder.MustBuild() })
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	registry := DefaultRegistry()

	assert.Equal(
		t,
		[]string{"pad", "print", "read", "reflect", "repeat", "stamp", "trim", "write"},
		registry.Names(),
	)

	builtins := registry.Builtins()
	require.Len(t, builtins, 8)
	assert.Equal(t, "pad", builtins[0].Name)

	pad, found := registry.Lookup("pad")
	require.True(t, found)
	assert.True(t, pad.Params[0].IsRequired())
	assert.False(t, pad.Params[1].IsRequired())

	_, found = registry.Lookup("unknown")
	assert.False(t, found)
}

func TestParamTypes(t *testing.T) {
	assert.True(t, ChartParam.Accepts(value.ChartValueKind))
	assert.False(t, ChartParam.Accepts(value.StringValueKind))
	assert.True(t, NumberParam.Accepts(value.IntValueKind))
	assert.True(t, BoolParam.Accepts(value.BoolValueKind))
	assert.True(t, AnyParam.Accepts(value.NullValueKind))
	assert.Equal(t, "number", NumberParam.String())
}

func TestParamsGetters(t *testing.T) {
	params := Params{
		"s": value.NewValueString("str"),
		"i": value.NewValueInt(3),
		"b": value.NewValueBool(true),
	}

	assert.Equal(t, "str", params.GetString("s"))
	assert.Equal(t, int64(3), params.GetInt("i"))
	assert.True(t, params.GetBool("b"))
	assert.Nil(t, params.GetChart("s"))
	assert.Equal(t, value.NullValueKind, params.Get("missing").Kind())
}
