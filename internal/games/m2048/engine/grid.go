package engine

import (
	"strconv"
	"strings"
)

// Grid is a square board of tile values. Rows are indexed first: g[y][x].
// Every cell holds 0 (empty) or a power of two >= 2.
type Grid [][]int

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// NewGrid creates an empty n×n grid.
func NewGrid(n int) Grid {
	g := make(Grid, n)
	for y := range g {
		g[y] = make([]int, n)
	}
	return g
}

// Size returns the grid dimension.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for y, row := range g {
		c[y] = make([]int, len(row))
		copy(c[y], row)
	}
	return c
}

// Equal returns true if both grids have the same shape and contents.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for y := range g {
		if len(g[y]) != len(other[y]) {
			return false
		}
		for x := range g[y] {
			if g[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Rotate returns a copy of the grid turned clockwise by times quarter turns.
// Negative counts turn counter-clockwise. The receiver is not modified.
func (g Grid) Rotate(times int) Grid {
	n := len(g)
	times = ((times % 4) + 4) % 4

	out := g.Clone()
	for range times {
		next := NewGrid(n)
		for y := range n {
			for x := range n {
				next[y][x] = out[n-1-x][y]
			}
		}
		out = next
	}
	return out
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for y, row := range g {
		for x, v := range row {
			if v == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Max returns the largest value on the grid.
func (g Grid) Max() int {
	maxVal := 0
	for _, row := range g {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// Valid reports whether the grid is square and every nonzero cell is 2^k, k >= 1.
func (g Grid) Valid() bool {
	for _, row := range g {
		if len(row) != len(g) {
			return false
		}
		for _, v := range row {
			if v == 0 {
				continue
			}
			if v < 2 || v&(v-1) != 0 {
				return false
			}
		}
	}
	return true
}

// String renders the grid as right-aligned rows, mostly for test failures.
func (g Grid) String() string {
	width := len(strconv.Itoa(g.Max()))
	var sb strings.Builder
	for y, row := range g {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			s := "."
			if v != 0 {
				s = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(s)))
			sb.WriteString(s)
		}
	}
	return sb.String()
}
