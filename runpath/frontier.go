package runpath

// entry is a frontier item: a tentative cost for a dense state index, plus
// the path-index node that produced it (noParent when paths are off).
type entry struct {
	cost  int64
	state int
	node  int
}

// frontier is a min-heap of entries ordered by cost, ties broken by the
// dense state index so that pops are fully deterministic.
//
// Lazy decrease-key: an improved cost is pushed as a new entry and the
// outdated one is discarded when popped.
type frontier []entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}

	return f[i].state < f[j].state
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(entry)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
