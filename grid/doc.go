// Package grid provides the immutable cost grid used by the runpath solver.
//
// What:
//
//   - Grid wraps a rectangular, row-major table of non-negative entry costs.
//   - Parse / ParseReader build a Grid from text: one row per line, one ASCII
//     digit (0–9) per cell.
//   - New builds a Grid from any [][]T of integers.
//
// Why:
//
//   - Heat-loss / terrain maps where moving into a cell costs its value.
//   - A single Grid is shared, read-only, by any number of concurrent searches.
//
// Complexity:
//
//   - New, Parse: O(W×H) time and memory.
//   - Cost, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrMalformedInput: umbrella sentinel; every construction error wraps it.
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNonDigit: a character other than 0–9 in textual input.
//   - ErrNegativeCost: a negative value passed to New.
package grid
