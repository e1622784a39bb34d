package bintreetesting

import (
	"testing"

	"github.com/forestrie/go-levelorder/bintree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeq(t *testing.T) {
	got := Seq(1, nil, -3)
	require.Len(t, got, 3)
	assert.Equal(t, 1, *got[0])
	assert.Nil(t, got[1])
	assert.Equal(t, -3, *got[2])

	assert.Panics(t, func() { Seq(1, "two") })
}

func TestCompleteTree(t *testing.T) {
	assert.Nil(t, CompleteTree(0, 1))

	root := CompleteTree(3, 1)
	want := &bintree.TreeNode{
		Val: 1,
		Left: &bintree.TreeNode{Val: 2,
			Left: bintree.NewTreeNode(4), Right: bintree.NewTreeNode(5)},
		Right: &bintree.TreeNode{Val: 3,
			Left: bintree.NewTreeNode(6), Right: bintree.NewTreeNode(7)},
	}
	assert.Equal(t, want, root)
}

func TestLevelOrder(t *testing.T) {
	assert.Nil(t, LevelOrder(nil))

	root := &bintree.TreeNode{Val: 1, Right: &bintree.TreeNode{Val: 2, Left: bintree.NewTreeNode(3)}}
	assert.Equal(t, Seq(1, nil, 2, 3, nil, nil, nil), LevelOrder(root))
	assert.Equal(t, Seq(1, nil, 2, 3), TrimNils(LevelOrder(root)))
}

func TestChain(t *testing.T) {
	root, seq := Chain(3)
	assert.Equal(t, Seq(0, nil, 1, nil, 2), seq)
	assert.Equal(t, root, bintree.Build(seq))

	root, seq = Chain(0)
	assert.Nil(t, root)
	assert.Nil(t, seq)
}

func TestNewTestContext(t *testing.T) {
	a := NewTestContext(t, TestConfig{TestLabelPrefix: "TestNewTestContext"})
	b := NewTestContext(t, TestConfig{TestLabelPrefix: "TestNewTestContext", LogLevel: "INFO"})
	require.NotNil(t, a.GetLog())
	require.NotNil(t, b.GetLog())
	assert.Same(t, t, a.T)
}
