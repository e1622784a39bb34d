package bintree

import (
	"fmt"
	"strconv"
	"strings"
)

// debug and display utilities

const sprintIndent = "    "

// Sprint renders the tree sideways, one node per line, indented by depth. The
// right subtree is printed above its parent and the left subtree below, so
// the output reads as the tree rotated a quarter turn anticlockwise.
func Sprint(root *TreeNode) string {
	if root == nil {
		return "<empty>\n"
	}

	type frame struct {
		n     *TreeNode
		depth int
	}

	var b strings.Builder
	var stack []frame

	cur, depth := root, 0
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, frame{cur, depth})
			cur = cur.Right
			depth++
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fmt.Fprintf(&b, "%s%d\n", strings.Repeat(sprintIndent, f.depth), f.n.Val)
		cur, depth = f.n.Left, f.depth+1
	}
	return b.String()
}

// SequenceString formats seq the way it would be written as a literal.
func SequenceString(seq []*int) string {
	s := make([]string, 0, len(seq))
	for _, v := range seq {
		if v == nil {
			s = append(s, "nil")
			continue
		}
		s = append(s, strconv.Itoa(*v))
	}
	return "[" + strings.Join(s, ", ") + "]"
}
