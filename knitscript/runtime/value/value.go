package value

type ValueKind uint8

const (
	NullValueKind ValueKind = iota
	StringValueKind
	IntValueKind
	BoolValueKind
	ChartValueKind
)

func (self ValueKind) String() string {
	switch self {
	case NullValueKind:
		return "null"
	case StringValueKind:
		return "string"
	case IntValueKind:
		return "int"
	case BoolValueKind:
		return "bool"
	case ChartValueKind:
		return "chart"
	default:
		panic("A new ValueKind was introduced without updating this code")
	}
}

type Value interface {
	Kind() ValueKind
	Display() string
}
