package runpath

// noParent marks a seed record and disabled path tracking.
const noParent = -1

// pathNode is one arena record: the state reached and the record it was
// reached from. Records are append-only and never revised.
type pathNode struct {
	state  int
	parent int
}

// pathIndex stores the predecessor chain of every frontier push.
// A nil *pathIndex records nothing.
type pathIndex struct {
	nodes []pathNode
}

func newPathIndex(capacity int) *pathIndex {
	return &pathIndex{nodes: make([]pathNode, 0, capacity)}
}

// add appends a record and returns its index, or noParent when pi is nil.
func (pi *pathIndex) add(state, parent int) int {
	if pi == nil {
		return noParent
	}
	pi.nodes = append(pi.nodes, pathNode{state: state, parent: parent})

	return len(pi.nodes) - 1
}

// walk returns the dense state indices from the seed to node, in order.
func (pi *pathIndex) walk(node int) []int {
	if pi == nil || node == noParent {
		return nil
	}
	var chain []int
	for at := node; at != noParent; at = pi.nodes[at].parent {
		chain = append(chain, pi.nodes[at].state)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain
}
