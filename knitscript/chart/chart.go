// Package chart implements the rectangular stitch grid which knitscript programs operate on.
package chart

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	header = "CHART"
	// Stitch used to fill short rows and padding.
	DefaultStitch = '.'
)

var (
	ErrIncompleteHeader = errors.New("chart header not found")
	ErrEmptyChart       = errors.New("chart contains no stitches")
	ErrOutOfRange       = errors.New("stitch out of range")
)

// Chart is a grid of stitches, addressed by (row, col) starting at 0.
// All operations return new charts and leave the receiver untouched.
type Chart struct {
	stitches [][]rune
	rows     int
	cols     int
}

func New(cols int, rows int, fill rune) *Chart {
	stitches := make([][]rune, rows)
	for row := range stitches {
		stitches[row] = make([]rune, cols)
		for col := range stitches[row] {
			stitches[row][col] = fill
		}
	}
	return &Chart{
		stitches: stitches,
		rows:     rows,
		cols:     cols,
	}
}

// FromRows builds a chart from one string per row.
// Short rows are filled with `DefaultStitch`.
func FromRows(rows ...string) *Chart {
	cols := 0
	grid := make([][]rune, 0, len(rows))
	for _, line := range rows {
		row := []rune(line)
		if len(row) > cols {
			cols = len(row)
		}
		grid = append(grid, row)
	}

	for idx, row := range grid {
		for len(row) < cols {
			row = append(row, DefaultStitch)
		}
		grid[idx] = row
	}

	return &Chart{
		stitches: grid,
		rows:     len(grid),
		cols:     cols,
	}
}

func (self *Chart) Rows() int { return self.rows }
func (self *Chart) Cols() int { return self.cols }

func (self *Chart) At(row int, col int) (rune, error) {
	if err := self.rangeCheck(row, col); err != nil {
		return 0, err
	}
	return self.stitches[row][col], nil
}

func (self *Chart) Set(row int, col int, stitch rune) error {
	if err := self.rangeCheck(row, col); err != nil {
		return err
	}
	self.stitches[row][col] = stitch
	return nil
}

func (self *Chart) rangeCheck(row int, col int) error {
	if row < 0 || row >= self.rows {
		return errors.Wrapf(ErrOutOfRange, "row %d (rows: %d)", row, self.rows)
	}
	if col < 0 || col >= self.cols {
		return errors.Wrapf(ErrOutOfRange, "col %d (cols: %d)", col, self.cols)
	}
	return nil
}

func (self *Chart) Equal(other *Chart) bool {
	return self.String() == other.String()
}

func (self *Chart) clone() *Chart {
	cloned := New(self.cols, self.rows, DefaultStitch)
	for row := range self.stitches {
		copy(cloned.stitches[row], self.stitches[row])
	}
	return cloned
}

//
// Text format
//

// Parse reads a chart: every line up to and including the one starting with `CHART` is skipped,
// every following line is one row.
func Parse(source io.Reader) (*Chart, error) {
	scanner := bufio.NewScanner(source)

	foundHeader := false
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), header) {
			foundHeader = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading chart header")
	}
	if !foundHeader {
		return nil, ErrIncompleteHeader
	}

	rows := make([]string, 0)
	for scanner.Scan() {
		rows = append(rows, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading chart stitches")
	}

	return FromRows(rows...), nil
}

func (self *Chart) Write(writer io.Writer) error {
	if _, err := fmt.Fprintln(writer, header); err != nil {
		return errors.Wrap(err, "writing chart header")
	}
	for _, row := range self.stitches {
		if _, err := fmt.Fprintln(writer, string(row)); err != nil {
			return errors.Wrap(err, "writing chart stitches")
		}
	}
	return nil
}

// String renders the stitches without the header.
func (self *Chart) String() string {
	var builder strings.Builder
	for _, row := range self.stitches {
		builder.WriteString(string(row))
		builder.WriteRune('\n')
	}
	return builder.String()
}
