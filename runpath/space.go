package runpath

import "github.com/katalvlaran/runpath/grid"

// space is the augmented state space over one grid under one set of rules.
// States are addressed by a dense index so that per-search tables can be
// plain slices:
//
//	index = ((row*cols + col)*4 + heading)*runs + run
//
// A straight run never outgrows the longest line of the grid, so runs is
// min(MaxRun, max(rows, cols)-1)+1 whatever MaxRun says.
type space struct {
	g     *grid.Grid
	rules Rules
	cols  int
	runs  int // run slots per (cell, heading)
	size  int
}

// transition is a legal move to a successor state with its entry cost.
type transition struct {
	to   State
	cost int64
}

func newSpace(g *grid.Grid, rules Rules) space {
	rows, cols := g.Dimensions()
	longest := max(rows, cols) - 1
	runs := min(rules.MaxRun, longest) + 1

	return space{
		g:     g,
		rules: rules,
		cols:  cols,
		runs:  runs,
		size:  rows * cols * numHeadings * runs,
	}
}

func (s space) index(st State) int {
	return ((st.Row*s.cols+st.Col)*numHeadings+int(st.Heading))*s.runs + st.Run
}

func (s space) state(idx int) State {
	run := idx % s.runs
	idx /= s.runs
	h := Heading(idx % numHeadings)
	cell := idx / numHeadings

	return State{Row: cell / s.cols, Col: cell % s.cols, Heading: h, Run: run}
}

// successors appends the legal moves out of st to buf[:0] and returns it.
// At most three headings qualify, since reversing is never allowed.
func (s space) successors(st State, buf []transition) []transition {
	buf = buf[:0]
	for _, h := range Headings {
		if !s.rules.Allows(st.Heading, st.Run, h) {
			continue
		}
		dr, dc := h.Delta()
		r, c := st.Row+dr, st.Col+dc
		if !s.g.InBounds(r, c) {
			continue
		}
		run := 1
		if h == st.Heading {
			run = st.Run + 1
		}
		buf = append(buf, transition{
			to:   State{Row: r, Col: c, Heading: h, Run: run},
			cost: s.g.Cost(r, c),
		})
	}

	return buf
}
