package errors

import (
	"fmt"
	"strings"
)

type ErrorKind uint8

const (
	// syntax
	SyntaxError ErrorKind = iota
	UnexpectedEOFError
	NumberFormatError
	// the input has more rows or columns than a location can represent
	SourceLimitError
	// binding
	UnknownFuncError
	UnknownParamError
	TooManyArgumentsError
	MissingArgumentError
	DuplicateArgumentError
	UndefinedVariableError
	TypeError
	// raised by builtins
	ValueError
	HostError
)

func (self ErrorKind) String() string {
	switch self {
	case SyntaxError:
		return "SyntaxError"
	case UnexpectedEOFError:
		return "UnexpectedEOF"
	case NumberFormatError:
		return "NumberFormat"
	case SourceLimitError:
		return "SourceLimit"
	case UnknownFuncError:
		return "UnknownFunc"
	case UnknownParamError:
		return "UnknownParam"
	case TooManyArgumentsError:
		return "TooManyArguments"
	case MissingArgumentError:
		return "MissingArgument"
	case DuplicateArgumentError:
		return "DuplicateArgument"
	case UndefinedVariableError:
		return "UndefinedVariable"
	case TypeError:
		return "TypeError"
	case ValueError:
		return "ValueError"
	case HostError:
		return "HostError"
	default:
		panic("A new ErrorKind was added without updating this code")
	}
}

func (self ErrorKind) IsSyntax() bool {
	return self == SyntaxError || self == UnexpectedEOFError || self == NumberFormatError || self == SourceLimitError
}

type Error struct {
	Kind     ErrorKind
	Message  string
	Location Location
	// Zero if the error was not caused by a specific source range.
	Span  Span
	Notes []string
}

func NewError(span Span, message string, kind ErrorKind) *Error {
	return &Error{
		Kind:     kind,
		Message:  message,
		Location: span.Start,
		Span:     span,
	}
}

// NewErrorAt creates an error for a single location without a known span.
func NewErrorAt(location Location, message string, kind ErrorKind) *Error {
	return &Error{
		Kind:     kind,
		Message:  message,
		Location: location,
	}
}

func NewSyntaxError(location Location, message string) *Error {
	return NewErrorAt(location, message, SyntaxError)
}

func (self *Error) WithNotes(notes ...string) *Error {
	self.Notes = append(self.Notes, notes...)
	return self
}

func (self *Error) Error() string {
	var builder strings.Builder
	if self.Location.IsZero() {
		fmt.Fprintf(&builder, "%s: %s", self.Kind, self.Message)
	} else {
		fmt.Fprintf(&builder, "%s at %s: %s", self.Kind, self.Location, self.Message)
	}
	for _, note := range self.Notes {
		fmt.Fprintf(&builder, " (%s)", note)
	}
	return builder.String()
}
