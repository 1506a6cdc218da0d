package Trees

import "golang.org/x/exp/constraints"

// A node in the arena.
// The zero value is meaningful: a node without children. info[S] at index 0
// is the nil node; it never holds a key and its l, r stay 0.
type info[S constraints.Unsigned] struct {
	l, r S
}

// pos is a position in the tree, either empty or holding a node. It's the l
// or r slot of node owner, or the root slot when owner is 0.
type pos[S constraints.Unsigned] struct {
	owner S
	right bool
}
