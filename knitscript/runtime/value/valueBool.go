package value

import "fmt"

type ValueBool struct {
	Inner bool
}

func (_ ValueBool) Kind() ValueKind { return BoolValueKind }

func (self ValueBool) Display() string { return fmt.Sprint(self.Inner) }

func NewValueBool(inner bool) Value {
	return ValueBool{Inner: inner}
}
