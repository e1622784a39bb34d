package bintree

import "fmt"

type arenaNode struct {
	val   int
	left  Ref
	right Ref
}

// Arena is a flat, index linked node store. Records are appended in the order
// nodes are materialized and each child slot is assigned at most once.
type Arena struct {
	nodes []arenaNode
	root  Ref
}

func newArena(capacity int) *Arena {
	return &Arena{
		nodes: make([]arenaNode, 0, capacity),
		root:  NoRef,
	}
}

// Len returns the number of materialized nodes.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Root returns the root ref, or NoRef for the empty tree.
func (a *Arena) Root() Ref {
	return a.root
}

// Value returns the value held at ref. It panics if ref is NoRef or outside
// the arena.
func (a *Arena) Value(ref Ref) int {
	return a.node(ref).val
}

// Left returns the left child of ref, or NoRef. It panics if ref is NoRef or
// outside the arena.
func (a *Arena) Left(ref Ref) Ref {
	return a.node(ref).left
}

// Right returns the right child of ref, or NoRef. It panics if ref is NoRef or
// outside the arena.
func (a *Arena) Right(ref Ref) Ref {
	return a.node(ref).right
}

func (a *Arena) node(ref Ref) *arenaNode {
	if ref == NoRef || int(ref) >= len(a.nodes) {
		panic(fmt.Sprintf("bintree: ref %d outside arena of %d nodes", ref, len(a.nodes)))
	}
	return &a.nodes[ref]
}

// add appends a child-less record for v and returns its ref.
func (a *Arena) add(v int) Ref {
	ref := Ref(len(a.nodes))
	a.nodes = append(a.nodes, arenaNode{val: v, left: NoRef, right: NoRef})
	if a.root == NoRef {
		a.root = ref
	}
	return ref
}

func (a *Arena) linkLeft(parent, child Ref) {
	n := a.node(parent)
	if n.left != NoRef {
		panic(fmt.Sprintf("bintree: left child of %d assigned twice", parent))
	}
	n.left = child
}

func (a *Arena) linkRight(parent, child Ref) {
	n := a.node(parent)
	if n.right != NoRef {
		panic(fmt.Sprintf("bintree: right child of %d assigned twice", parent))
	}
	n.right = child
}

// Tree finalizes the index links into a pointer tree and returns its root.
// It is iterative, so arbitrarily deep chains are safe.
func (a *Arena) Tree() *TreeNode {
	if a.root == NoRef {
		return nil
	}

	nodes := make([]*TreeNode, len(a.nodes))
	for i := range a.nodes {
		nodes[i] = NewTreeNode(a.nodes[i].val)
	}
	for i, n := range a.nodes {
		if n.left != NoRef {
			nodes[i].Left = nodes[n.left]
		}
		if n.right != NoRef {
			nodes[i].Right = nodes[n.right]
		}
	}
	return nodes[a.root]
}
