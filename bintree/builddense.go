package bintree

// BuildDense reconstructs the tree listed by seq in the dense, heap style
// level order encoding: the entry at position i has its children at 2i+1 and
// 2i+2, and nil entries occupy their slots like any other. Entries below a
// nil slot are unreachable and produce no node. Positions past the end of seq
// are nil.
func BuildDense(seq []*int, opts ...BuildOption) *TreeNode {
	return BuildDenseArena(seq, opts...).Tree()
}

// BuildDenseArena links the dense encoding of seq in an Arena without
// finalizing it. Refs are assigned breadth first.
func BuildDenseArena(seq []*int, opts ...BuildOption) *Arena {
	o := newBuildOptions(len(seq), opts)
	a := newArena(o.capacity)

	if len(seq) == 0 || seq[0] == nil {
		return a
	}

	// positions[ref] is the sequence position ref was materialized from.
	positions := make([]int, 0, o.capacity)
	materialize := func(i int) Ref {
		positions = append(positions, i)
		return a.add(*seq[i])
	}
	materialize(0)

	for parent := Ref(0); int(parent) < a.Len(); parent++ {
		left := 2*positions[parent] + 1
		if left >= len(seq) {
			// Positions only grow from here on, no further node has children.
			break
		}
		if seq[left] != nil {
			a.linkLeft(parent, materialize(left))
		}
		if right := left + 1; right < len(seq) && seq[right] != nil {
			a.linkRight(parent, materialize(right))
		}
	}

	present := 0
	for _, v := range seq {
		if v != nil {
			present++
		}
	}
	if unreachable := present - a.Len(); unreachable > 0 {
		o.debugf("bintree: %d dense entries ignored, their ancestor slot is nil", unreachable)
	}
	return a
}
