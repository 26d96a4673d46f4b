package runpath

import (
	"sync"

	"github.com/katalvlaran/runpath/grid"
)

// Query is one independent search request against a shared grid.
type Query struct {
	Name    string   // caller's label, copied to the Outcome
	Options []Option // passed to Solve as-is
}

// Outcome pairs a Query with its Solve result.
type Outcome struct {
	Query  Query
	Result Result
	Err    error
}

// SolveBatch runs every query in its own goroutine against g and returns
// the outcomes in query order. The grid is only read, and each search owns
// its tables, so the goroutines share nothing else.
func SolveBatch(g *grid.Grid, queries []Query) []Outcome {
	out := make([]Outcome, len(queries))
	var wg sync.WaitGroup
	wg.Add(len(queries))
	for i := range queries {
		go func(i int) {
			defer wg.Done()
			res, err := Solve(g, queries[i].Options...)
			out[i] = Outcome{Query: queries[i], Result: res, Err: err}
		}(i)
	}
	wg.Wait()

	return out
}
