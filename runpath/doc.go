// Package runpath finds minimum-cost routes across a cost grid when the legal
// moves depend on how the route got there.
//
// Overview:
//
//   - Entering a cell costs its value; the start cell is free.
//   - A route may never reverse. It must turn after at most MaxRun cells in one
//     heading, and may only turn (or stop at the goal) after at least MinRun.
//   - Two presets: Standard (0..3) and Ultra (4..10). Any other valid pair can
//     be supplied with WithRules.
//
// Why a plain grid Dijkstra is not enough:
//
//	The cheapest way into a cell may leave it with a run that forbids the
//	continuation the optimal route needs. The search therefore runs over the
//	augmented state (row, col, heading, run) and finalizes each of those
//	separately.
//
// Key features:
//
//   - Functional options (WithMode, WithRules, WithStart, WithGoal,
//     WithReturnPath, WithMaxCost) keep the Solve signature stable.
//   - Dense per-state tables: no hashing, deterministic iteration.
//   - Path reconstruction from an index arena of (state, parent) records.
//   - SolveBatch: independent queries on one shared grid, in parallel.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrBadRules, ErrOutOfBounds, ErrBadMaxCost: returned before
//     any search work.
//   - ErrUnreachable: the goal cannot be finalized under the rules. Distinct
//     from a zero cost; no cost is ever synthesized for it.
//   - ErrCostLimit: joined with ErrUnreachable when MaxCost pruned the search.
//
// API reference:
//
//	func Solve(g *grid.Grid, opts ...Option) (Result, error)
//	func SolveBatch(g *grid.Grid, queries []Query) []Outcome
//
// Thread safety:
//
//   - A *grid.Grid is immutable, so any number of Solve calls may share one.
//   - Solve has no suspension points and no cancellation. A caller that needs
//     a timeout runs it in a goroutine and abandons the result.
package runpath
