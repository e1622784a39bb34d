package bintree

// TreeNode is a binary tree node. Nodes carry no parent reference.
type TreeNode struct {
	Val   int
	Left  *TreeNode
	Right *TreeNode
}

// NewTreeNode returns a child-less node holding v.
func NewTreeNode(v int) *TreeNode {
	return &TreeNode{Val: v}
}

// Tree wraps an optional root. A nil Root is the empty tree.
type Tree struct {
	Root *TreeNode
}

// NewTree builds the compact encoding of seq, see Build.
func NewTree(seq []*int, opts ...BuildOption) Tree {
	return Tree{Root: Build(seq, opts...)}
}

func (t Tree) Empty() bool {
	return t.Root == nil
}

func (t Tree) String() string {
	return Sprint(t.Root)
}
