package runpath

import (
	"container/heap"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/runpath/grid"
)

func testGrid(t *testing.T, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)

	return g
}

// TestSpace_IndexRoundTrip checks that index and state are inverse over the
// whole dense range.
func TestSpace_IndexRoundTrip(t *testing.T) {
	sp := newSpace(testGrid(t, "1234\n5678\n9123\n"), Standard.Rules())
	require.Equal(t, 3*4*4*4, sp.size)

	for idx := 0; idx < sp.size; idx++ {
		st := sp.state(idx)
		if got := sp.index(st); got != idx {
			t.Fatalf("index(state(%d)) = %d (state %+v)", idx, got, st)
		}
	}
}

// TestSpace_RunSlotsClamped: no run can be longer than the grid's longest
// line, so a huge MaxRun must not inflate the tables.
func TestSpace_RunSlotsClamped(t *testing.T) {
	g := testGrid(t, "1234\n5678\n9123\n")
	cases := []struct {
		name  string
		rules Rules
		runs  int
	}{
		{"Standard", Standard.Rules(), 4},
		{"Ultra", Ultra.Rules(), 4},
		{"MaxInt", Rules{MinRun: 0, MaxRun: math.MaxInt}, 4},
		{"Short", Rules{MinRun: 1, MaxRun: 2}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sp := newSpace(g, tc.rules)
			assert.Equal(t, tc.runs, sp.runs)
			assert.Equal(t, 3*4*4*tc.runs, sp.size)
		})
	}

	single := newSpace(testGrid(t, "7\n"), Rules{MinRun: 0, MaxRun: math.MaxInt})
	assert.Equal(t, 1, single.runs)
	assert.Equal(t, numHeadings, single.size)
}

func TestSpace_Successors(t *testing.T) {
	g := testGrid(t, "123\n456\n789\n")
	std := newSpace(g, Standard.Rules())

	// Run exhausted: only the two turns remain.
	got := std.successors(State{Row: 1, Col: 1, Heading: Right, Run: 3}, nil)
	assert.ElementsMatch(t, []transition{
		{to: State{Row: 0, Col: 1, Heading: Up, Run: 1}, cost: 2},
		{to: State{Row: 2, Col: 1, Heading: Down, Run: 1}, cost: 8},
	}, got)

	// Straight and both turns, never the reverse.
	got = std.successors(State{Row: 1, Col: 1, Heading: Down, Run: 1}, nil)
	assert.ElementsMatch(t, []transition{
		{to: State{Row: 2, Col: 1, Heading: Down, Run: 2}, cost: 8},
		{to: State{Row: 1, Col: 0, Heading: Left, Run: 1}, cost: 4},
		{to: State{Row: 1, Col: 2, Heading: Right, Run: 1}, cost: 6},
	}, got)

	// Corner: out-of-bounds targets are dropped.
	got = std.successors(State{Row: 0, Col: 0, Heading: Up, Run: 1}, nil)
	assert.ElementsMatch(t, []transition{
		{to: State{Row: 0, Col: 1, Heading: Right, Run: 1}, cost: 2},
	}, got)

	// Ultra at a seed: run 0 forbids turning.
	ultra := newSpace(g, Ultra.Rules())
	got = ultra.successors(State{Row: 1, Col: 1, Heading: Left, Run: 0}, nil)
	assert.Equal(t, []transition{
		{to: State{Row: 1, Col: 0, Heading: Left, Run: 1}, cost: 4},
	}, got)
}

func TestSpace_SuccessorsReusesBuffer(t *testing.T) {
	sp := newSpace(testGrid(t, "11\n11\n"), Standard.Rules())
	buf := make([]transition, 0, 4)
	buf = sp.successors(State{Row: 0, Col: 0, Heading: Down, Run: 0}, buf)
	require.NotEmpty(t, buf)
	again := sp.successors(State{Row: 1, Col: 1, Heading: Down, Run: 3}, buf)
	assert.Same(t, &buf[0], &again[0], "successors must append into buf[:0]")
}

func TestFrontier_TieBreak(t *testing.T) {
	f := frontier{}
	heap.Init(&f)
	heap.Push(&f, entry{cost: 5, state: 9})
	heap.Push(&f, entry{cost: 3, state: 7})
	heap.Push(&f, entry{cost: 5, state: 2})
	heap.Push(&f, entry{cost: 3, state: 1})

	var order []int
	for f.Len() > 0 {
		order = append(order, heap.Pop(&f).(entry).state)
	}
	assert.Equal(t, []int{1, 7, 2, 9}, order)
}

func TestPathIndex_Walk(t *testing.T) {
	var disabled *pathIndex
	assert.Equal(t, noParent, disabled.add(3, noParent))
	assert.Nil(t, disabled.walk(0))

	pi := newPathIndex(4)
	a := pi.add(10, noParent)
	b := pi.add(20, a)
	c := pi.add(30, b)
	_ = pi.add(40, a) // sibling branch, not on the walked chain

	assert.Equal(t, []int{10, 20, 30}, pi.walk(c))
	assert.Equal(t, []int{10}, pi.walk(a))
	assert.Nil(t, pi.walk(noParent))
}
