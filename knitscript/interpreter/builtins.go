package interpreter

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/smarthome-go/knitscript/knitscript/chart"
	"github.com/smarthome-go/knitscript/knitscript/errors"
	"github.com/smarthome-go/knitscript/knitscript/runtime/value"
)

// Upper bound for the rows and columns of charts created by builtins.
const maxChartDimension = 4096

// DefaultRegistry contains every builtin available to knitscript programs.
func DefaultRegistry() *Registry {
	return NewRegistryBuilder().Register(StandardBuiltins()...).MustBuild()
}

func StandardBuiltins() []Builtin {
	return []Builtin{
		{
			Name:   "read",
			Params: []ParamDesc{Param("filename", StringParam)},
			Func:   Read,
		},
		{
			Name: "write",
			Params: []ParamDesc{
				Param("chart", ChartParam),
				Param("filename", StringParam),
			},
			Func: Write,
		},
		{
			Name: "pad",
			Params: []ParamDesc{
				Param("chart", ChartParam),
				OptionalParam("pad_size", NumberParam, value.NewValueInt(1)),
				OptionalParam("stitch", StringParam, value.NewValueString(string(chart.DefaultStitch))),
			},
			Func: Pad,
		},
		{
			Name:   "trim",
			Params: []ParamDesc{Param("chart", ChartParam)},
			Func:   Trim,
		},
		{
			Name:   "reflect",
			Params: []ParamDesc{Param("chart", ChartParam)},
			Func:   Reflect,
		},
		{
			Name: "repeat",
			Params: []ParamDesc{
				Param("chart", ChartParam),
				OptionalParam("h", NumberParam, value.NewValueInt(1)),
				OptionalParam("v", NumberParam, value.NewValueInt(1)),
			},
			Func: Repeat,
		},
		{
			Name: "stamp",
			Params: []ParamDesc{
				Param("chart", ChartParam),
				Param("stamp", ChartParam),
				OptionalParam("h_offset", NumberParam, value.NewValueInt(0)),
				OptionalParam("v_offset", NumberParam, value.NewValueInt(0)),
			},
			Func: Stamp,
		},
		{
			Name:   "print",
			Params: []ParamDesc{Param("value", AnyParam)},
			Func:   Print,
		},
	}
}

func Read(executor Executor, span errors.Span, params Params) (value.Value, *errors.Error) {
	filename := params.GetString("filename")

	content, err := executor.ReadFile(filename)
	if err != nil {
		return nil, errors.NewError(
			span,
			fmt.Sprintf("read: could not read file '%s': %s", filename, err.Error()),
			errors.HostError,
		)
	}

	parsed, err := chart.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, errors.NewError(
			span,
			fmt.Sprintf("read: file '%s' is not a valid chart: %s", filename, err.Error()),
			errors.ValueError,
		)
	}

	if err := checkChartSize("read", parsed, span); err != nil {
		return nil, err
	}

	return value.NewValueChart(parsed), nil
}

func checkChartSize(builtin string, source *chart.Chart, span errors.Span) *errors.Error {
	if source.Cols() <= maxChartDimension && source.Rows() <= maxChartDimension {
		return nil
	}
	return errors.NewError(
		span,
		fmt.Sprintf("%s: chart of %dx%d stitches exceeds the size limit of %d", builtin, source.Cols(), source.Rows(), maxChartDimension),
		errors.ValueError,
	)
}

func Write(executor Executor, span errors.Span, params Params) (value.Value, *errors.Error) {
	filename := params.GetString("filename")

	var buffer bytes.Buffer
	if err := params.GetChart("chart").Write(&buffer); err != nil {
		return nil, errors.NewError(span, fmt.Sprintf("write: %s", err.Error()), errors.HostError)
	}

	if err := executor.WriteFile(filename, buffer.Bytes()); err != nil {
		return nil, errors.NewError(
			span,
			fmt.Sprintf("write: could not write file '%s': %s", filename, err.Error()),
			errors.HostError,
		)
	}

	return value.NewValueNull(), nil
}

func Pad(executor Executor, span errors.Span, params Params) (value.Value, *errors.Error) {
	source := params.GetChart("chart")
	size := params.GetInt("pad_size")

	stitch := params.GetString("stitch")
	if utf8.RuneCountInString(stitch) != 1 {
		return nil, errors.NewError(
			span,
			fmt.Sprintf("pad: stitch must be exactly one character, got '%s'", stitch),
			errors.ValueError,
		)
	}

	if err := checkChartSize("pad", source, span); err != nil {
		return nil, err
	}

	if size < 0 || int64(source.Cols())+2*size > maxChartDimension || int64(source.Rows())+2*size > maxChartDimension {
		return nil, errors.NewError(
			span,
			fmt.Sprintf("pad: pad_size %d would make the chart exceed the size limit of %d", size, maxChartDimension),
			errors.ValueError,
		)
	}

	stitchRune, _ := utf8.DecodeRuneInString(stitch)
	padded, err := source.Pad(int(size), stitchRune)
	if err != nil {
		return nil, errors.NewError(span, fmt.Sprintf("pad: %s", err.Error()), errors.ValueError)
	}

	return value.NewValueChart(padded), nil
}

func Trim(executor Executor, span errors.Span, params Params) (value.Value, *errors.Error) {
	trimmed, err := params.GetChart("chart").Trim()
	if err != nil {
		return nil, errors.NewError(span, fmt.Sprintf("trim: %s", err.Error()), errors.ValueError)
	}
	return value.NewValueChart(trimmed), nil
}

func Reflect(executor Executor, span errors.Span, params Params) (value.Value, *errors.Error) {
	return value.NewValueChart(params.GetChart("chart").Reflect()), nil
}

func Repeat(executor Executor, span errors.Span, params Params) (value.Value, *errors.Error) {
	source := params.GetChart("chart")
	h := params.GetInt("h")
	v := params.GetInt("v")

	if h > 0 && v > 0 && (int64(source.Cols())*h > maxChartDimension || int64(source.Rows())*v > maxChartDimension) {
		return nil, errors.NewError(
			span,
			fmt.Sprintf("repeat: the resulting chart would exceed the size limit of %d", maxChartDimension),
			errors.ValueError,
		)
	}

	repeated, err := source.Repeat(int(h), int(v))
	if err != nil {
		return nil, errors.NewError(span, fmt.Sprintf("repeat: %s", err.Error()), errors.ValueError)
	}
	return value.NewValueChart(repeated), nil
}

func Stamp(executor Executor, span errors.Span, params Params) (value.Value, *errors.Error) {
	stamped := params.GetChart("chart").Stamp(
		params.GetChart("stamp"),
		int(params.GetInt("h_offset")),
		int(params.GetInt("v_offset")),
	)
	return value.NewValueChart(stamped), nil
}

func Print(executor Executor, span errors.Span, params Params) (value.Value, *errors.Error) {
	executor.Print(params.Get("value").Display())
	return value.NewValueNull(), nil
}
