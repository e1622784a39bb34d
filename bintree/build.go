package bintree

// Build reconstructs the tree listed by seq in the compact level order
// encoding and returns its root, or nil for the empty tree.
//
// Each present node, taken breadth first, consumes the next entry of seq as
// its left child and the one after as its right child. A nil entry leaves the
// child absent and lists nothing below it. Build never fails: see the package
// documentation for how degenerate input is resolved.
func Build(seq []*int, opts ...BuildOption) *TreeNode {
	return BuildArena(seq, opts...).Tree()
}

// BuildArena links the compact encoding of seq in an Arena without
// finalizing it. Refs are assigned in sequence order.
func BuildArena(seq []*int, opts ...BuildOption) *Arena {
	o := newBuildOptions(len(seq), opts)
	a := newArena(o.capacity)

	if len(seq) == 0 || seq[0] == nil {
		return a
	}
	a.add(*seq[0])

	// Children are appended in the order a FIFO worklist would enqueue them,
	// so walking parent refs in ascending order dequeues that worklist.
	next := 1
	parent := Ref(0)
	for ; int(parent) < a.Len() && next < len(seq); parent++ {
		if v := seq[next]; v != nil {
			a.linkLeft(parent, a.add(*v))
		}
		next++

		if next >= len(seq) {
			// A dangling left entry, the right slot defaults to nil.
			parent++
			break
		}
		if v := seq[next]; v != nil {
			a.linkRight(parent, a.add(*v))
		}
		next++
	}

	if pending := a.Len() - int(parent); pending > 0 {
		o.debugf("bintree: sequence exhausted with %d nodes awaiting children", pending)
	}
	if unconsumed := len(seq) - next; unconsumed > 0 {
		o.debugf("bintree: %d trailing entries ignored, no node left to consume them", unconsumed)
	}
	return a
}
