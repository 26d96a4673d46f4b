package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/runpath/grid"
	"github.com/katalvlaran/runpath/runpath"
)

// Sentinel errors for rendering.
var (
	// ErrNilGrid indicates a nil *grid.Grid.
	ErrNilGrid = errors.New("render: grid is nil")
	// ErrStepOutside indicates a path step that does not lie on the grid.
	ErrStepOutside = errors.New("render: path step outside grid")
)

const (
	startGlyph = '•'
	ansiReset  = "\x1b[0m"
	ansiBright = "\x1b[97m"
)

var (
	cheap  = colorful.Color{R: 1, G: 0, B: 0}
	costly = colorful.Color{R: 0, G: 0, B: 1}
)

// Options configures Overlay.
type Options struct {
	Color bool // emit ANSI truecolor escapes
}

// Option represents a functional option for configuring Overlay.
type Option func(*Options)

// WithColor enables ANSI colors.
func WithColor() Option {
	return func(o *Options) {
		o.Color = true
	}
}

// DefaultOptions returns plain, uncolored output settings.
func DefaultOptions() Options {
	return Options{Color: false}
}

// Overlay writes g to w, one line per row, with path drawn over it.
// An empty path draws the bare grid. Every cell is right-aligned to the width
// of the widest cost, so grids with costs above 9 keep their columns.
func Overlay(w io.Writer, g *grid.Grid, path []runpath.Step, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return ErrNilGrid
	}

	rows, cols := g.Dimensions()
	marks := make([]rune, rows*cols)
	for i, s := range path {
		if !g.Contains(s.Pos) {
			return fmt.Errorf("%w: step %d at %v", ErrStepOutside, i, s.Pos)
		}
		if i > 0 {
			marks[g.Index(s.Pos)] = s.Heading.Glyph()
		}
	}
	if len(path) > 0 {
		marks[g.Index(path[0].Pos)] = startGlyph
	}

	width := cellWidth(g)
	bw := bufio.NewWriter(w)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if m := marks[r*cols+c]; m != 0 {
				pad(bw, width-1)
				writeMark(bw, m, cfg.Color)
				continue
			}
			digits := strconv.FormatInt(g.Cost(r, c), 10)
			pad(bw, width-len(digits))
			writeCost(bw, g.Cost(r, c), digits, cfg.Color)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// String is Overlay into a string.
func String(g *grid.Grid, path []runpath.Step, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Overlay(&sb, g, path, opts...); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func writeMark(w *bufio.Writer, m rune, color bool) {
	if color {
		w.WriteString(ansiBright)
	}
	w.WriteRune(m)
	if color {
		w.WriteString(ansiReset)
	}
}

// cellWidth is the number of digits in the largest cost of g.
func cellWidth(g *grid.Grid) int {
	var top int64
	rows, cols := g.Dimensions()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			top = max(top, g.Cost(r, c))
		}
	}

	return len(strconv.FormatInt(top, 10))
}

func pad(w *bufio.Writer, n int) {
	for ; n > 0; n-- {
		w.WriteByte(' ')
	}
}

func writeCost(w *bufio.Writer, cost int64, digits string, color bool) {
	if color {
		w.WriteString(heat(cost))
	}
	w.WriteString(digits)
	if color {
		w.WriteString(ansiReset)
	}
}

// heat returns the foreground escape for a cost: 0 is pure red, 9 and above
// pure blue, blended in RGB space in between.
func heat(cost int64) string {
	t := float64(cost) / 9
	if t > 1 {
		t = 1
	}
	r, g, b := cheap.BlendRgb(costly, t).RGB255()

	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}
