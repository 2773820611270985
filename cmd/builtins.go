package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/smarthome-go/knitscript/knitscript/interpreter"
	"github.com/smarthome-go/knitscript/knitscript/runtime/value"
)

func listBuiltins(output io.Writer) {
	for _, builtin := range interpreter.DefaultRegistry().Builtins() {
		fmt.Fprintln(output, signature(builtin))
	}
}

// Renders a builtin like `pad(chart: Chart, pad_size: Number = 1)`.
func signature(builtin interpreter.Builtin) string {
	caser := cases.Title(language.English)

	params := make([]string, 0, len(builtin.Params))
	for _, param := range builtin.Params {
		typ := caser.String(param.Type.String())
		if param.IsRequired() {
			params = append(params, fmt.Sprintf("%s: %s", param.Name, typ))
			continue
		}
		params = append(params, fmt.Sprintf("%s: %s = %s", param.Name, typ, displayDefault(param.Default)))
	}

	return fmt.Sprintf("%s(%s)", builtin.Name, strings.Join(params, ", "))
}

func displayDefault(val value.Value) string {
	if val.Kind() == value.StringValueKind {
		return fmt.Sprintf("\"%s\"", val.Display())
	}
	return val.Display()
}
