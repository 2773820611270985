package value

type ValueNull struct{}

func (_ ValueNull) Kind() ValueKind { return NullValueKind }

func (self ValueNull) Display() string { return "null" }

func NewValueNull() Value {
	return ValueNull{}
}
