package knitscript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarthome-go/knitscript/knitscript/errors"
	"github.com/smarthome-go/knitscript/knitscript/interpreter"
	"github.com/smarthome-go/knitscript/knitscript/runtime/value"
)

type testError struct {
	Kind     errors.ErrorKind
	Message  string
	Location errors.Location
}

type test struct {
	Name           string
	File           string
	Skip           bool
	KeepGoing      bool
	ExpectedOutput []string
	ExpectedFiles  map[string]string
	ExpectedErrors []testError
}

var tests = []test{
	{
		Name:           "Pad",
		File:           "./test/programs/pad.ks",
		ExpectedOutput: []string{"-------\n-------\n--***--\n--*.*--\n--***--\n-------\n-------"},
		ExpectedFiles: map[string]string{
			"framed.knit": "CHART\n-------\n-------\n--***--\n--*.*--\n--***--\n-------\n-------\n",
		},
	},
	{
		Name:           "Pattern",
		File:           "./test/programs/pattern.ks",
		ExpectedOutput: []string{"*.**.*\n.*..*.\n*.**.*\n*.**.*\n.*..*.\n*.**.*"},
	},
	{
		Name:           "UnknownFunction",
		File:           "./test/programs/unknown_function.ks",
		ExpectedOutput: []string{},
		ExpectedErrors: []testError{
			{
				Kind:     errors.UnknownFuncError,
				Message:  "Unknown function 'paad'",
				Location: errors.NewLocation(2, 10),
			},
		},
	},
	{
		Name:           "SyntaxError",
		File:           "./test/programs/syntax_error.ks",
		ExpectedOutput: []string{},
		ExpectedErrors: []testError{
			{
				Kind:     errors.SyntaxError,
				Message:  "'true' is a reserved word",
				Location: errors.NewLocation(2, 1),
			},
		},
	},
	{
		Name:           "KeepGoing",
		File:           "./test/programs/keep_going.ks",
		KeepGoing:      true,
		ExpectedOutput: []string{"still running"},
		ExpectedErrors: []testError{
			{
				Kind:     errors.UndefinedVariableError,
				Message:  "Use of undefined variable 'undefined_chart'",
				Location: errors.NewLocation(1, 7),
			},
			{
				Kind:     errors.HostError,
				Message:  "read: could not read file 'missing.knit'",
				Location: errors.NewLocation(2, 11),
			},
			{
				Kind:     errors.UnknownParamError,
				Message:  "Unknown parameter 'extra'",
				Location: errors.NewLocation(5, 24),
			},
		},
	},
}

func loadCharts(t *testing.T) map[string]string {
	paths, err := filepath.Glob("./test/charts/*.knit")
	require.NoError(t, err)

	charts := make(map[string]string)
	for _, path := range paths {
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		charts[filepath.Base(path)] = string(content)
	}
	return charts
}

func TestPrograms(t *testing.T) {
	for _, test := range tests {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			if test.Skip {
				t.Skip()
			}

			program, err := os.ReadFile(test.File)
			require.NoError(t, err)

			executor := NewMemoryExecutor(loadCharts(t))
			_, errs := Run(executor, interpreter.DefaultRegistry(), string(program), test.File, test.KeepGoing)

			require.Len(t, errs, len(test.ExpectedErrors), spew.Sdump(errs))
			for idx, expected := range test.ExpectedErrors {
				assert.Equal(t, expected.Kind, errs[idx].Kind)
				assert.True(t, strings.Contains(errs[idx].Message, expected.Message), errs[idx].Message)
				assert.Equal(t, expected.Location, errs[idx].Location)
			}

			assert.Equal(t, test.ExpectedOutput, executor.Output)
			for name, content := range test.ExpectedFiles {
				assert.Equal(t, content, string(executor.Files[name]), name)
			}
		})
	}
}

func TestEndToEndAssignment(t *testing.T) {
	executor := NewMemoryExecutor(map[string]string{"f.knit": "CHART\n*.\n"})

	program, err := Parse(`chart = read("f.knit")`, "inline")
	require.Nil(t, err)
	require.Len(t, program.Statements, 1)
	assert.Equal(t, `chart = read("f.knit")`, program.String())

	context, errs := Run(executor, interpreter.DefaultRegistry(), `chart = read("f.knit")`, "inline", false)
	require.Empty(t, errs)

	chart, found := context.Get("chart")
	require.True(t, found)
	assert.Equal(t, value.ChartValueKind, chart.Kind())
}

func TestOsExecutor(t *testing.T) {
	dir := t.TempDir()
	var output strings.Builder
	executor := NewOsExecutor(dir, &output)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "in.knit"), []byte("CHART\n.*.\n"), 0644))

	_, errs := Run(executor, interpreter.DefaultRegistry(), "c = read(\"in.knit\")\nwrite(reflect_me, \"x\")", "inline", false)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.UndefinedVariableError, errs[0].Kind)

	_, errs = Run(executor, interpreter.DefaultRegistry(), "c = read(\"in.knit\")\nc = pad(c)\nwrite(c, \"out.knit\")\nprint(\"done\")", "inline", false)
	require.Empty(t, errs, spew.Sdump(errs))

	written, err := os.ReadFile(filepath.Join(dir, "out.knit"))
	require.NoError(t, err)
	assert.Equal(t, "CHART\n.....\n..*..\n.....\n", string(written))
	assert.Equal(t, "done\n", output.String())
}
