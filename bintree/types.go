package bintree

// Ref is an arena record index.
type Ref uint32

// NoRef marks an absent child.
const NoRef = ^Ref(0)

// Int returns a pointer to v, for writing sequence literals.
func Int(v int) *int {
	return &v
}

// Ints returns a sequence in which every entry is present.
func Ints(vs ...int) []*int {
	seq := make([]*int, 0, len(vs))
	for _, v := range vs {
		seq = append(seq, Int(v))
	}
	return seq
}
