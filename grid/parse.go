package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single input row.
const maxLineBytes = 1 << 20

// Parse builds a Grid from text: one row per line, each cell a single ASCII
// digit giving its entry cost. Trailing "\r" on each line and trailing blank
// lines are ignored, as are blank lines before the first row; anything else
// that is not 0–9 fails with ErrNonDigit. A row longer than 1 MiB fails with
// ErrLineTooLong.
func Parse(text string) (*Grid, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader is Parse over an io.Reader. The whole input is consumed before
// the Grid is returned; no partial Grid is produced on error.
func ParseReader(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var (
		rows    [][]uint8
		pending int // blank lines seen since the last non-blank row
		line    int
	)
	for ; sc.Scan(); line++ {
		text := strings.TrimSuffix(sc.Text(), "\r")
		if text == "" {
			pending++
			continue
		}
		// Blank lines between rows are zero-length rows; leading ones are dropped.
		for ; pending > 0; pending-- {
			if len(rows) > 0 {
				rows = append(rows, nil)
			}
		}
		row := make([]uint8, len(text))
		for c := 0; c < len(text); c++ {
			ch := text[c]
			if ch < '0' || ch > '9' {
				return nil, malformed(ErrNonDigit, "line %d column %d: %q", line+1, c+1, text[c:c+1])
			}
			row[c] = ch - '0'
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, malformed(ErrLineTooLong, "line %d exceeds %d bytes", line+1, maxLineBytes)
		}
		return nil, fmt.Errorf("grid: reading input: %w", err)
	}

	return New(rows)
}
