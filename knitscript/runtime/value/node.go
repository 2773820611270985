package value

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/smarthome-go/knitscript/knitscript/errors"
	"github.com/smarthome-go/knitscript/knitscript/parser/ast"
)

// Scope resolves variable names while arguments are evaluated.
type Scope interface {
	Get(name string) (Value, bool)
	Names() []string
}

// FromNode evaluates an argument node.
// Literals map directly, identifiers are looked up in `scope`.
func FromNode(node ast.Value, scope Scope) (Value, *errors.Error) {
	switch node := node.(type) {
	case ast.String:
		return NewValueString(node.Value), nil
	case ast.Number:
		return NewValueInt(int64(node.Value)), nil
	case ast.Bool:
		return NewValueBool(node.Value), nil
	case ast.Ident:
		val, found := scope.Get(node.Value)
		if !found {
			return nil, errors.NewError(
				node.Range,
				fmt.Sprintf("Use of undefined variable '%s'", node.Value),
				errors.UndefinedVariableError,
			).WithNotes(Suggest(node.Value, scope.Names())...)
		}
		return val, nil
	default:
		panic("A new ast.Value was added without updating this code")
	}
}

// Suggest returns a "did you mean" note for the candidates closest to `name`.
func Suggest(name string, candidates []string) []string {
	best := make([]string, 0)
	bestDistance := len(name)/2 + 1

	for _, candidate := range candidates {
		distance := levenshtein.ComputeDistance(name, candidate)
		switch {
		case distance < bestDistance:
			best = []string{candidate}
			bestDistance = distance
		case distance == bestDistance:
			best = append(best, candidate)
		}
	}

	if len(best) == 0 {
		return nil
	}

	sort.Strings(best)
	quoted := make([]string, 0, len(best))
	for _, candidate := range best {
		quoted = append(quoted, fmt.Sprintf("'%s'", candidate))
	}

	if len(quoted) == 1 {
		return []string{fmt.Sprintf("did you mean %s?", quoted[0])}
	}
	return []string{fmt.Sprintf("did you mean one of %s?", joinOr(quoted))}
}

func joinOr(items []string) string {
	out := ""
	for idx, item := range items {
		switch {
		case idx == 0:
		case idx == len(items)-1:
			out += " or "
		default:
			out += ", "
		}
		out += item
	}
	return out
}
