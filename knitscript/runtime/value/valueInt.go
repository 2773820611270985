package value

import "fmt"

type ValueInt struct {
	Inner int64
}

func (_ ValueInt) Kind() ValueKind { return IntValueKind }

func (self ValueInt) Display() string { return fmt.Sprint(self.Inner) }

func NewValueInt(inner int64) Value {
	return ValueInt{Inner: inner}
}
