package chart

import (
	"github.com/pkg/errors"
)

func isEmpty(stitch rune) bool {
	return stitch == ' ' || stitch == '.'
}

// Pad surrounds the chart with `size` rows / columns of `stitch` on every side.
func (self *Chart) Pad(size int, stitch rune) (*Chart, error) {
	if size < 0 {
		return nil, errors.Errorf("pad size must not be negative, got %d", size)
	}

	padded := New(self.cols+2*size, self.rows+2*size, stitch)
	for row := 0; row < self.rows; row++ {
		copy(padded.stitches[row+size][size:], self.stitches[row])
	}
	return padded, nil
}

// Trim removes empty rows and columns from all edges.
func (self *Chart) Trim() (*Chart, error) {
	top, bottom, left, right := -1, -1, -1, -1

	for row := 0; row < self.rows; row++ {
		for col := 0; col < self.cols; col++ {
			if isEmpty(self.stitches[row][col]) {
				continue
			}
			if top == -1 {
				top = row
			}
			bottom = row
			if left == -1 || col < left {
				left = col
			}
			if col > right {
				right = col
			}
		}
	}

	if top == -1 {
		return nil, errors.Wrap(ErrEmptyChart, "cannot trim")
	}

	trimmed := New(right-left+1, bottom-top+1, DefaultStitch)
	for row := 0; row < trimmed.rows; row++ {
		copy(trimmed.stitches[row], self.stitches[row+top][left:right+1])
	}
	return trimmed, nil
}

// Reflect mirrors the chart horizontally.
func (self *Chart) Reflect() *Chart {
	reflected := New(self.cols, self.rows, DefaultStitch)
	for row := 0; row < self.rows; row++ {
		for col := 0; col < self.cols; col++ {
			reflected.stitches[row][self.cols-col-1] = self.stitches[row][col]
		}
	}
	return reflected
}

// Repeat tiles the chart `h` times horizontally and `v` times vertically.
func (self *Chart) Repeat(h int, v int) (*Chart, error) {
	if h <= 0 {
		return nil, errors.Errorf("horizontal repeat count must be positive, got %d", h)
	}
	if v <= 0 {
		return nil, errors.Errorf("vertical repeat count must be positive, got %d", v)
	}

	repeated := New(self.cols*h, self.rows*v, DefaultStitch)
	for row := 0; row < repeated.rows; row++ {
		for col := 0; col < repeated.cols; col++ {
			repeated.stitches[row][col] = self.stitches[row%self.rows][col%self.cols]
		}
	}
	return repeated, nil
}

// Stamp copies the non-empty stitches of `stamp` onto the chart with its top left corner at (vOffset, hOffset).
// Parts of the stamp outside of the chart are clipped.
func (self *Chart) Stamp(stamp *Chart, hOffset int, vOffset int) *Chart {
	stamped := self.clone()
	for row := 0; row < stamp.rows; row++ {
		targetRow := row + vOffset
		if targetRow < 0 || targetRow >= stamped.rows {
			continue
		}
		for col := 0; col < stamp.cols; col++ {
			targetCol := col + hOffset
			if targetCol < 0 || targetCol >= stamped.cols {
				continue
			}
			stitch := stamp.stitches[row][col]
			if isEmpty(stitch) {
				continue
			}
			stamped.stitches[targetRow][targetCol] = stitch
		}
	}
	return stamped
}
