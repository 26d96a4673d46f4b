// Package runpath defines the core types, rule presets and configuration
// options for run-length constrained shortest-path search on a cost grid.
//
// A search state is (row, col, heading, run): besides the cell, the solver
// tracks the direction of travel and how many cells have been entered in that
// direction since the last turn. Rules bound that run from below (before a
// turn is allowed) and from above (before a turn is forced).
//
// Options:
//
//	– Rules:      MinRun / MaxRun bounds (WithMode or WithRules).
//	– Start:      first cell; its cost is never paid (default: top-left).
//	– Goal:       last cell (default: bottom-right).
//	– ReturnPath: if true, reconstruct the path alongside the cost.
//	– MaxCost:    optional cap; states costlier than this are not explored.
//
// Errors (sentinel):
//
//	– ErrNilGrid      if the grid pointer is nil.
//	– ErrBadRules     if MinRun < 0, MaxRun < 1 or MinRun > MaxRun.
//	– ErrOutOfBounds  if Start or Goal lies outside the grid.
//	– ErrBadMaxCost   if MaxCost < 0.
//	– ErrUnreachable  if no legal route reaches Goal.
//	– ErrCostLimit    joined with ErrUnreachable when MaxCost pruned the search.
//	– ErrCostOverflow if the only routes left cost more than math.MaxInt64.
package runpath

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/runpath/grid"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Solve.
	ErrNilGrid = errors.New("runpath: grid is nil")

	// ErrBadRules indicates run-length bounds that admit no sensible search.
	ErrBadRules = errors.New("runpath: invalid run-length rules")

	// ErrOutOfBounds indicates a start or goal cell outside the grid.
	ErrOutOfBounds = errors.New("runpath: cell out of bounds")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("runpath: MaxCost must be non-negative")

	// ErrUnreachable indicates that the frontier was exhausted before the goal
	// could be finalized under the rules. It is never reported as a cost.
	ErrUnreachable = errors.New("runpath: goal unreachable")

	// ErrCostLimit accompanies ErrUnreachable when MaxCost cut the search short.
	ErrCostLimit = errors.New("runpath: cost limit reached")

	// ErrCostOverflow indicates that every route left to the goal costs more
	// than an int64 can hold.
	ErrCostOverflow = errors.New("runpath: route cost overflows int64")

	// ErrBadMode indicates an unknown mode name.
	ErrBadMode = errors.New("runpath: unknown mode")
)

// Heading is one of the four cardinal travel directions.
// The ordinal values are dense and used directly as table indices.
type Heading uint8

const (
	Up Heading = iota
	Down
	Left
	Right
)

// numHeadings is the number of Heading values.
const numHeadings = 4

// Headings lists every heading in ordinal order.
var Headings = [numHeadings]Heading{Up, Down, Left, Right}

// Reverse returns the opposite heading. Up and Down, Left and Right differ
// only in the lowest bit.
func (h Heading) Reverse() Heading { return h ^ 1 }

// TurnLeft returns the heading after a quarter turn counter-clockwise.
func (h Heading) TurnLeft() Heading {
	switch h {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	default:
		return Up
	}
}

// TurnRight returns the heading after a quarter turn clockwise.
func (h Heading) TurnRight() Heading {
	return h.TurnLeft().Reverse()
}

// Delta returns the (row, col) offset of one step in this heading.
func (h Heading) Delta() (dr, dc int) {
	switch h {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// Glyph returns the arrow character used when drawing a path.
func (h Heading) Glyph() rune {
	switch h {
	case Up:
		return '^'
	case Down:
		return 'v'
	case Left:
		return '<'
	default:
		return '>'
	}
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}

	return fmt.Sprintf("Heading(%d)", uint8(h))
}

// Rules bounds the run length: a turn is legal only once Run ≥ MinRun, and
// continuing straight is legal only while Run < MaxRun. The goal is accepted
// only in a state with Run ≥ MinRun.
type Rules struct {
	MinRun int
	MaxRun int
}

// Validate reports ErrBadRules unless 0 ≤ MinRun ≤ MaxRun and MaxRun ≥ 1.
func (r Rules) Validate() error {
	if r.MinRun < 0 || r.MaxRun < 1 || r.MinRun > r.MaxRun {
		return fmt.Errorf("%w: min=%d max=%d", ErrBadRules, r.MinRun, r.MaxRun)
	}

	return nil
}

// Allows reports whether a state heading cur with the given run may move one
// cell in heading next.
func (r Rules) Allows(cur Heading, run int, next Heading) bool {
	switch {
	case next == cur.Reverse():
		return false
	case next == cur:
		return run < r.MaxRun
	default:
		return run >= r.MinRun
	}
}

// Accepts reports whether a state with the given run may end the search.
func (r Rules) Accepts(run int) bool {
	return run >= r.MinRun
}

func (r Rules) String() string {
	return fmt.Sprintf("runs %d..%d", r.MinRun, r.MaxRun)
}

// Mode selects a Rules preset.
type Mode int

const (
	// Standard allows turning at any time and at most 3 cells in a row.
	Standard Mode = iota
	// Ultra requires at least 4 and allows at most 10 cells between turns.
	Ultra
)

// Rules returns the preset bounds for m.
func (m Mode) Rules() Rules {
	if m == Ultra {
		return Rules{MinRun: 4, MaxRun: 10}
	}

	return Rules{MinRun: 0, MaxRun: 3}
}

func (m Mode) String() string {
	switch m {
	case Standard:
		return "standard"
	case Ultra:
		return "ultra"
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts "standard" or "ultra", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return Standard, nil
	case "ultra":
		return Ultra, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadMode, s)
}

// State is one point of the augmented search space.
type State struct {
	Row, Col int
	Heading  Heading
	Run      int
}

// Pos returns the cell of s.
func (s State) Pos() grid.Pos { return grid.Pos{Row: s.Row, Col: s.Col} }

// Step is one element of a reconstructed path: a cell and the heading in
// which it was entered. The start step carries the heading of the seed state
// the path grew from.
type Step struct {
	Pos     grid.Pos
	Heading Heading
}

// Result is the outcome of a successful search.
type Result struct {
	Cost     int64  // minimal total cost, start cell excluded
	Path     []Step // start→goal; nil unless WithReturnPath was given
	Rules    Rules  // the bounds the search ran under
	Expanded int    // states finalized before the goal
	Pushed   int    // frontier insertions, seeds included
}

// BottomRight is the Goal placeholder resolved to the grid's last cell.
var BottomRight = grid.Pos{Row: -1, Col: -1}

// Options configures Solve.
type Options struct {
	Rules      Rules    // run-length bounds
	Start      grid.Pos // first cell
	Goal       grid.Pos // last cell; BottomRight resolves against the grid
	ReturnPath bool     // whether to reconstruct the path
	MaxCost    int64    // upper bound on explored cost
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithMode selects the rule preset for m.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Rules = m.Rules()
	}
}

// WithRules sets explicit run-length bounds. Validated by Solve.
func WithRules(r Rules) Option {
	return func(o *Options) {
		o.Rules = r
	}
}

// WithStart sets the first cell of the route.
func WithStart(p grid.Pos) Option {
	return func(o *Options) {
		o.Start = p
	}
}

// WithGoal sets the last cell of the route.
func WithGoal(p grid.Pos) Option {
	return func(o *Options) {
		o.Goal = p
	}
}

// WithReturnPath enables path reconstruction in the Result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost caps the explored cost. A goal that cannot be reached within
// the cap is reported as ErrUnreachable joined with ErrCostLimit.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		o.MaxCost = max
	}
}

// DefaultOptions returns the defaults used by Solve:
//   - Rules:      Standard preset (0..3).
//   - Start:      (0,0).
//   - Goal:       BottomRight.
//   - ReturnPath: false.
//   - MaxCost:    math.MaxInt64 (no cap).
func DefaultOptions() Options {
	return Options{
		Rules:      Standard.Rules(),
		Start:      grid.Pos{},
		Goal:       BottomRight,
		ReturnPath: false,
		MaxCost:    math.MaxInt64,
	}
}
