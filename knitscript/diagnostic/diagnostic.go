package diagnostic

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/smarthome-go/knitscript/knitscript/errors"
)

type DiagnosticLevel uint8

const (
	DiagnosticLevelHint DiagnosticLevel = iota
	DiagnosticLevelInfo
	DiagnosticLevelWarning
	DiagnosticLevelError
)

func (self DiagnosticLevel) String() string {
	switch self {
	case DiagnosticLevelHint:
		return "Hint"
	case DiagnosticLevelInfo:
		return "Info"
	case DiagnosticLevelWarning:
		return "Warning"
	case DiagnosticLevelError:
		return "Error"
	default:
		panic("A new diagnostic level was added without updating this code")
	}
}

func (self DiagnosticLevel) color() *color.Color {
	switch self {
	case DiagnosticLevelHint:
		return color.New(color.FgMagenta, color.Bold)
	case DiagnosticLevelInfo:
		return color.New(color.FgBlue, color.Bold)
	case DiagnosticLevelWarning:
		return color.New(color.FgYellow, color.Bold)
	case DiagnosticLevelError:
		return color.New(color.FgRed, color.Bold)
	default:
		panic("A new diagnostic level was added without updating this code")
	}
}

//
// Diagnostic
//

type Diagnostic struct {
	Level    DiagnosticLevel `json:"level"`
	Kind     string          `json:"kind"`
	Message  string          `json:"message"`
	Notes    []string        `json:"notes"`
	Location errors.Location `json:"location"`
	Span     errors.Span     `json:"span"`
	Filename string          `json:"filename"`
}

func FromError(err errors.Error, filename string) Diagnostic {
	return Diagnostic{
		Level:    DiagnosticLevelError,
		Kind:     err.Kind.String(),
		Message:  err.Message,
		Notes:    err.Notes,
		Location: err.Location,
		Span:     err.Span,
		Filename: filename,
	}
}

// Display renders the diagnostic with the lines of `program` surrounding its location.
// Colors are controlled globally through `color.NoColor`.
func (self Diagnostic) Display(program string) string {
	levelColor := self.Level.color()
	gutter := color.New(color.FgHiBlack)
	noteColor := color.New(color.FgCyan, color.Bold)

	title := self.Level.String()
	if self.Kind != "" {
		title = fmt.Sprintf("%s[%s]", title, self.Kind)
	}

	notes := ""
	for _, note := range self.Notes {
		notes += fmt.Sprintf("%s %s\n", noteColor.Sprint(" - note:"), note)
	}

	// take special action if there is no useful location / the source code is empty
	lines := strings.Split(program, "\n")
	if self.Location.IsZero() || int(self.Location.Row) > len(lines) {
		return fmt.Sprintf(
			"%s in %s\n%s\n%s",
			levelColor.Sprint(title),
			self.Filename,
			levelColor.Sprint(self.Message),
			notes,
		)
	}

	row := int(self.Location.Row)

	excerpt := ""
	if row > 1 {
		excerpt += fmt.Sprintf(" %s%s\n", gutter.Sprintf("%3d | ", row-1), lines[row-2])
	}
	excerpt += fmt.Sprintf(" %s%s\n", gutter.Sprintf("%3d | ", row), lines[row-1])
	excerpt += levelColor.Sprint(strings.Repeat(" ", int(self.Location.Col)+6) + self.markers(lines[row-1]))
	if row < len(lines) {
		excerpt += fmt.Sprintf("\n %s%s", gutter.Sprintf("%3d | ", row+1), lines[row])
	}

	return fmt.Sprintf(
		"%s at %s:%d:%d\n%s\n\n%s\n%s",
		levelColor.Sprint(title),
		self.Filename,
		self.Location.Row,
		self.Location.Col,
		excerpt,
		levelColor.Sprint(self.Message),
		notes,
	)
}

// Markers below the offending characters of the diagnostic's first line.
func (self Diagnostic) markers(line string) string {
	if self.Span.IsZero() {
		return "^"
	}

	if self.Span.Start.Row == self.Span.End.Row {
		return strings.Repeat("^", max(int(self.Span.End.Col-self.Span.Start.Col), 1))
	}

	// multiline span: mark the rest of the first line
	lineLength := len([]rune(line))
	remaining := max(lineLength-int(self.Span.Start.Col)+1, 1)

	s := "s"
	if self.Span.End.Row-self.Span.Start.Row == 1 {
		s = ""
	}

	return fmt.Sprintf("%s ... + %d more line%s", strings.Repeat("^", remaining), self.Span.End.Row-self.Span.Start.Row, s)
}
