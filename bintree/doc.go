/*
# Level order binary tree reconstruction

This package rebuilds a binary tree from its level order (breadth first)
listing: a flat sequence of optional integers where nil marks an absent child.

Construction happens in two steps: a flat, index addressed node store (the
Arena) is linked first, and only then finalized into a pointer tree. No node is handed to the caller
before all of its links are assigned.

## Two encodings

There are two incompatible ways a level order sequence may treat nil entries.
They are exposed as distinct functions and never conflated.

### Compact (Build)

Each present node consumes the next two pending entries for its children.
A nil entry is consumed by its parent but reserves nothing further, so no
entries are listed below a nil. This is the common interchange format.

	[1, nil, 2, 3, 4, nil, nil, 5, 6]

	    1
	     \
	      2
	     / \
	    3   4
	       / \
	      5   6

### Dense (BuildDense)

The sequence is a heap style array. The entry at position i has its children
at 2i+1 and 2i+2, and a nil entry occupies its slot exactly like a value.
Entries whose ancestor slot is nil are unreachable and produce no node.

	[1, nil, 2, 3, 4, nil, nil, 5, 6]

	    1
	     \
	      2

For sequences without any nil entries the two encodings agree.

## The worklist is the arena

Compact reconstruction is a breadth first walk: a FIFO worklist is seeded
with the root, and the Nth consumed pair of entries is assigned to the Nth
dequeued node. Because children are appended to the arena in exactly the
order they would be enqueued, the arena itself serves as the worklist. The
parent cursor walks refs 0, 1, 2, ... while the entry cursor walks the
sequence. Both advance monotonically, so construction is a single O(n) pass.

## Degenerate input

Nothing here fails. An empty sequence, or one whose first entry is nil,
denotes the empty tree. A missing trailing right slot is treated as nil.
Entries that no present node can consume are ignored. A Ref outside the
arena is a bug in the caller or in this package and panics.
*/
package bintree
