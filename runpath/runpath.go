// Package runpath implements a run-length constrained Dijkstra search on a
// cost grid.
//
// Entering a cell costs the cell's value. Which moves are legal depends on
// history: the search state is (row, col, heading, run), so the same cell may
// be finalized up to 4×R times, once per heading and run length, where
// R = min(MaxRun, max(rows, cols)-1)+1.
//
// Complexity:
//
//   - Time:  O(E log E), E = rows·cols·4·R state expansions.
//   - Space: O(rows·cols·4·R) for the dense cost and finalized tables,
//     plus O(E) frontier entries and path records under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Per-state tables are dense slices addressed by a computed index.
//   - Paths live in an append-only arena of (state, parent) records.
//   - Ties in the frontier are broken by dense state index.
package runpath

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/runpath/grid"
)

// Solve computes the minimal cost of moving from Options.Start to
// Options.Goal on g under the configured run-length rules.
//
// Returns:
//
//   - Result: Cost (the start cell is never paid for), the Rules used, search
//     counters, and Path when WithReturnPath() was given.
//   - err: a validation error, or ErrUnreachable when the frontier empties
//     before the goal is finalized in a state with Run ≥ MinRun.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Rules must satisfy 0 ≤ MinRun ≤ MaxRun, MaxRun ≥ 1 (ErrBadRules).
//  3. Start and Goal must lie inside g (ErrOutOfBounds).
//  4. MaxCost must be non-negative (ErrBadMaxCost).
//
// Solve only reads g; concurrent calls on one grid need no synchronization.
func Solve(g *grid.Grid, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate.
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := cfg.Rules.Validate(); err != nil {
		return Result{}, err
	}
	if cfg.Goal == BottomRight {
		_, cfg.Goal = g.Corners()
	}
	if !g.Contains(cfg.Start) {
		return Result{}, fmt.Errorf("%w: start %v", ErrOutOfBounds, cfg.Start)
	}
	if !g.Contains(cfg.Goal) {
		return Result{}, fmt.Errorf("%w: goal %v", ErrOutOfBounds, cfg.Goal)
	}
	if cfg.MaxCost < 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadMaxCost, cfg.MaxCost)
	}

	// 3) Allocate per-search state. Nothing here outlives the call.
	sp := newSpace(g, cfg.Rules)
	r := &runner{
		sp:      sp,
		options: cfg,
		best:    make([]int64, sp.size),
		done:    make([]bool, sp.size),
		pq:      make(frontier, 0, numHeadings),
		buf:     make([]transition, 0, numHeadings),
	}
	if cfg.ReturnPath {
		r.paths = newPathIndex(sp.size / sp.runs)
	}

	// 4) Seed and run.
	r.init()

	return r.process()
}

// runner holds the mutable state of a single search.
type runner struct {
	sp      space
	options Options
	best    []int64      // dense state index → best known cost, or unseen
	done    []bool       // dense state index → finalized
	pq      frontier     // lazy min-heap
	paths   *pathIndex   // nil unless ReturnPath
	buf     []transition // reused successor buffer

	expanded int
	pushed   int
	capped   bool // a successor was dropped by MaxCost
	overflow bool // a successor's cost did not fit in an int64
}

// unseen marks a state with no recorded cost. Cell costs are never negative,
// so every real cost in best is ≥ 0.
const unseen = -1

// init marks every state unseen and seeds one zero-cost, zero-run state
// per heading at the start cell.
func (r *runner) init() {
	for i := range r.best {
		r.best[i] = unseen
	}
	heap.Init(&r.pq)

	start := r.options.Start
	for _, h := range Headings {
		idx := r.sp.index(State{Row: start.Row, Col: start.Col, Heading: h})
		r.best[idx] = 0
		heap.Push(&r.pq, entry{cost: 0, state: idx, node: r.paths.add(idx, noParent)})
		r.pushed++
	}
}

// process is the main loop: pop the cheapest entry, drop it if stale,
// finalize it, stop at an accepting goal state, otherwise relax.
func (r *runner) process() (Result, error) {
	goal := r.options.Goal
	rules := r.options.Rules
	for r.pq.Len() > 0 {
		// 1) Pop the smallest (cost, state) entry.
		e := heap.Pop(&r.pq).(entry)

		// 2) Stale: a cheaper entry for this state was pushed later, or the
		//    state has already been finalized.
		if e.cost > r.best[e.state] || r.done[e.state] {
			continue
		}

		// 3) Finalize.
		r.done[e.state] = true
		r.expanded++

		// 4) Goal test. Greedy exhaustion makes the first accepting pop optimal.
		st := r.sp.state(e.state)
		if st.Row == goal.Row && st.Col == goal.Col && rules.Accepts(st.Run) {
			return r.result(e), nil
		}

		// 5) Relax successors.
		r.relax(st, e)
	}

	if r.capped {
		return Result{}, fmt.Errorf("%w: %w: no route from %v to %v within cost %d",
			ErrUnreachable, ErrCostLimit, r.options.Start, goal, r.options.MaxCost)
	}
	if r.overflow {
		return Result{}, fmt.Errorf("%w: no route from %v to %v within int64",
			ErrCostOverflow, r.options.Start, goal)
	}

	return Result{}, fmt.Errorf("%w: no route from %v to %v under %v",
		ErrUnreachable, r.options.Start, goal, rules)
}

// relax pushes every successor of st whose cost strictly improves on the
// recorded best. The new entry's path record points at the popped entry's
// record, which is never revised afterwards.
func (r *runner) relax(st State, from entry) {
	r.buf = r.sp.successors(st, r.buf)
	var next int
	var nc int64
	for _, tr := range r.buf {
		next = r.sp.index(tr.to)
		if r.done[next] {
			continue
		}
		if tr.cost > math.MaxInt64-from.cost {
			// The true cost exceeds math.MaxInt64, and so any finite cap.
			if r.options.MaxCost < math.MaxInt64 {
				r.capped = true
			} else {
				r.overflow = true
			}
			continue
		}
		nc = from.cost + tr.cost
		if nc > r.options.MaxCost {
			r.capped = true
			continue
		}
		// Strict: equal-cost alternatives are not re-queued.
		if b := r.best[next]; b != unseen && nc >= b {
			continue
		}
		r.best[next] = nc
		heap.Push(&r.pq, entry{cost: nc, state: next, node: r.paths.add(next, from.node)})
		r.pushed++
	}
}

// result assembles the Result for the accepting goal entry e.
func (r *runner) result(e entry) Result {
	res := Result{
		Cost:     e.cost,
		Rules:    r.options.Rules,
		Expanded: r.expanded,
		Pushed:   r.pushed,
	}
	if r.paths == nil {
		return res
	}
	chain := r.paths.walk(e.node)
	res.Path = make([]Step, len(chain))
	for i, idx := range chain {
		st := r.sp.state(idx)
		res.Path[i] = Step{Pos: st.Pos(), Heading: st.Heading}
	}

	return res
}
