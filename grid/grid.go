package grid

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of integers.
// The input is copied; later changes to values do not affect the Grid.
//
// Returns (each wrapped together with ErrMalformedInput):
//   - ErrEmptyGrid if values has no rows or its first row has no columns.
//   - ErrNonRectangular if any row length differs from the first.
//   - ErrNegativeCost if any value is below zero.
//   - ErrCostRange if any value does not fit in an int64.
//
// Complexity: O(W×H) time and memory.
func New[T constraints.Integer](values [][]T) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, malformed(ErrEmptyGrid, "got %d rows", len(values))
	}
	h, w := len(values), len(values[0])
	cells := make([]int64, 0, h*w)
	for r, row := range values {
		if len(row) != w {
			return nil, malformed(ErrNonRectangular, "row %d has %d cells, want %d", r, len(row), w)
		}
		for c, v := range row {
			if v < 0 {
				return nil, malformed(ErrNegativeCost, "cell (%d,%d) = %d", r, c, v)
			}
			// Unsigned values above math.MaxInt64 wrap negative.
			cost := int64(v)
			if cost < 0 {
				return nil, malformed(ErrCostRange, "cell (%d,%d) = %d", r, c, v)
			}
			cells = append(cells, cost)
		}
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// Dimensions returns (rows, cols).
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Cost returns the cost of entering cell (row, col).
// The caller must ensure the cell is in bounds.
func (g *Grid) Cost(row, col int) int64 {
	return g.cells[row*g.cols+col]
}

// CostAt is Cost for a Pos.
func (g *Grid) CostAt(p Pos) int64 {
	return g.cells[p.Row*g.cols+p.Col]
}

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains is InBounds for a Pos.
func (g *Grid) Contains(p Pos) bool {
	return g.InBounds(p.Row, p.Col)
}

// Index maps p to its row-major index: Row*cols + Col.
func (g *Grid) Index(p Pos) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Pos.
func (g *Grid) Coordinate(idx int) Pos {
	return Pos{Row: idx / g.cols, Col: idx % g.cols}
}

// Corners returns the top-left and bottom-right cells.
func (g *Grid) Corners() (topLeft, bottomRight Pos) {
	return Pos{}, Pos{Row: g.rows - 1, Col: g.cols - 1}
}

// String renders the grid back in its textual form. Costs above 9 are
// written in full, so the output only round-trips through Parse for
// digit grids.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			v := g.Cost(r, c)
			if v < 10 {
				sb.WriteByte(byte('0' + v))
				continue
			}
			sb.WriteString(strconv.FormatInt(v, 10))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
