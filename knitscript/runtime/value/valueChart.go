package value

import (
	"strings"

	"github.com/smarthome-go/knitscript/knitscript/chart"
)

// ValueChart holds a chart produced by a builtin.
// Charts are never mutated in place, so sharing the pointer between variables is safe.
type ValueChart struct {
	Inner *chart.Chart
}

func (_ ValueChart) Kind() ValueKind { return ChartValueKind }

func (self ValueChart) Display() string {
	return strings.TrimSuffix(self.Inner.String(), "\n")
}

func NewValueChart(inner *chart.Chart) Value {
	return ValueChart{Inner: inner}
}
