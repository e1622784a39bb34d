package bintreetesting

import (
	"fmt"

	"github.com/forestrie/go-levelorder/bintree"
)

// Seq builds a sequence literal from ints and nils, eg Seq(1, nil, 2).
// Any other element type is a mistake in the test and panics.
func Seq(vs ...any) []*int {
	seq := make([]*int, 0, len(vs))
	for i, v := range vs {
		switch x := v.(type) {
		case nil:
			seq = append(seq, nil)
		case int:
			seq = append(seq, bintree.Int(x))
		default:
			panic(fmt.Sprintf("bintreetesting: Seq element %d has type %T, want int or nil", i, v))
		}
	}
	return seq
}

// CompleteTree returns a perfect tree with the given number of levels whose
// values, read breadth first, count up from first. Zero levels is the empty
// tree.
func CompleteTree(levels int, first int) *bintree.TreeNode {
	if levels <= 0 {
		return nil
	}
	count := 1<<levels - 1

	nodes := make([]*bintree.TreeNode, count)
	for i := range nodes {
		nodes[i] = bintree.NewTreeNode(first + i)
	}
	for i := range nodes {
		if l := 2*i + 1; l < count {
			nodes[i].Left = nodes[l]
			nodes[i].Right = nodes[l+1]
		}
	}
	return nodes[0]
}

// LevelOrder lists root in the compact encoding: every absent child of a
// present node is a nil entry and nothing is listed below it. Trailing nils
// are kept, so the result accounts for every child slot.
func LevelOrder(root *bintree.TreeNode) []*int {
	if root == nil {
		return nil
	}

	var seq []*int
	worklist := []*bintree.TreeNode{root}
	for len(worklist) > 0 {
		n := worklist[0]
		worklist = worklist[1:]
		if n == nil {
			seq = append(seq, nil)
			continue
		}
		seq = append(seq, bintree.Int(n.Val))
		worklist = append(worklist, n.Left, n.Right)
	}
	return seq
}

// TrimNils drops trailing nil entries.
func TrimNils(seq []*int) []*int {
	for len(seq) > 0 && seq[len(seq)-1] == nil {
		seq = seq[:len(seq)-1]
	}
	return seq
}

// Chain returns a degenerate tree of n nodes, each the right child of the
// previous one, with values 0..n-1, alongside its compact encoding.
func Chain(n int) (*bintree.TreeNode, []*int) {
	if n <= 0 {
		return nil, nil
	}
	seq := []*int{bintree.Int(0)}
	root := bintree.NewTreeNode(0)
	cur := root
	for i := 1; i < n; i++ {
		cur.Right = bintree.NewTreeNode(i)
		cur = cur.Right
		seq = append(seq, nil, bintree.Int(i))
	}
	return root, seq
}
