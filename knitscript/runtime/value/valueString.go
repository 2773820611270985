package value

type ValueString struct {
	Inner string
}

func (_ ValueString) Kind() ValueKind { return StringValueKind }

func (self ValueString) Display() string { return self.Inner }

func NewValueString(inner string) Value {
	return ValueString{Inner: inner}
}
