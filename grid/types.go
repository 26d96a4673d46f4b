package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction. Each specific error is reported
// together with ErrMalformedInput, so callers may test for either.
var (
	// ErrMalformedInput is the umbrella for every construction failure.
	ErrMalformedInput = errors.New("grid: malformed input")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNonDigit indicates a character outside 0–9 in textual input.
	ErrNonDigit = errors.New("grid: cell is not an ASCII digit")
	// ErrNegativeCost indicates a negative cell value.
	ErrNegativeCost = errors.New("grid: cell cost must be non-negative")
	// ErrCostRange indicates an unsigned cell value above math.MaxInt64.
	ErrCostRange = errors.New("grid: cell cost exceeds int64 range")
	// ErrLineTooLong indicates a textual row longer than the reader accepts.
	ErrLineTooLong = errors.New("grid: input line too long")
)

// malformed joins a specific sentinel with ErrMalformedInput and a location.
func malformed(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrMalformedInput, kind, fmt.Sprintf(format, args...))
}

// Pos is a cell coordinate. Row 0 is the top row, Col 0 the leftmost column.
type Pos struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p shifted by (dr, dc).
func (p Pos) Add(dr, dc int) Pos {
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// Grid is an immutable rows×cols table of entry costs.
// cells is row-major: cells[row*cols+col].
type Grid struct {
	rows, cols int
	cells      []int64
}
