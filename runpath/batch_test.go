package runpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/runpath/runpath"
)

func TestSolveBatch_OrderAndResults(t *testing.T) {
	g := mustParse(t, canonical)
	queries := []runpath.Query{
		{Name: "standard", Options: []runpath.Option{runpath.WithMode(runpath.Standard)}},
		{Name: "ultra", Options: []runpath.Option{runpath.WithMode(runpath.Ultra), runpath.WithReturnPath()}},
		{Name: "broken", Options: []runpath.Option{runpath.WithRules(runpath.Rules{MinRun: 3, MaxRun: 1})}},
	}

	out := runpath.SolveBatch(g, queries)
	require.Len(t, out, 3)

	assert.Equal(t, "standard", out[0].Query.Name)
	require.NoError(t, out[0].Err)
	assert.Equal(t, int64(102), out[0].Result.Cost)

	assert.Equal(t, "ultra", out[1].Query.Name)
	require.NoError(t, out[1].Err)
	assert.Equal(t, int64(94), out[1].Result.Cost)
	assert.NotEmpty(t, out[1].Result.Path)

	assert.Equal(t, "broken", out[2].Query.Name)
	assert.ErrorIs(t, out[2].Err, runpath.ErrBadRules)
}

// TestSolveBatch_MatchesSerial runs many concurrent searches on one grid and
// compares each with its serial counterpart. Run with -race.
func TestSolveBatch_MatchesSerial(t *testing.T) {
	g := mustParse(t, canonical)
	var queries []runpath.Query
	for i := 0; i < 16; i++ {
		mode := runpath.Standard
		if i%2 == 1 {
			mode = runpath.Ultra
		}
		queries = append(queries, runpath.Query{
			Name:    mode.String(),
			Options: []runpath.Option{runpath.WithMode(mode), runpath.WithReturnPath()},
		})
	}

	out := runpath.SolveBatch(g, queries)
	for i, o := range out {
		require.NoError(t, o.Err)
		serial, err := runpath.Solve(g, queries[i].Options...)
		require.NoError(t, err)
		assert.Equal(t, serial.Cost, o.Result.Cost, "query %d", i)
		assert.Equal(t, serial.Path, o.Result.Path, "query %d", i)
	}
}

func TestSolveBatch_Empty(t *testing.T) {
	assert.Empty(t, runpath.SolveBatch(mustParse(t, "1\n"), nil))
}
