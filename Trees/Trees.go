package Trees

import "io"

// Tree represents an ordered set implemented as a binary search tree of nodes.
// Keys are compared with the comparator the tree was built with, which must be
// a valid total order; an inconsistent comparator leaves the tree in an
// undefined state, it's never reported as an error.
// None of the receivers are safe for concurrent use. Methods implemented
// recursively should be noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if v wasn't in the tree before.
	//Inserting an existing key is a no-op.
	Insert(v T) bool
	//Contains v. The tree isn't modified.
	Contains(v T) bool
	//Erase v from the Tree. Returning true if v was in the tree.
	//Erasing an absent key is a no-op.
	Erase(v T) bool
	//Dump writes the structure of the tree to w in pre-order, one position
	//per line, indented by its depth. Empty positions are written as (nil).
	Dump(w io.Writer) error
	//DumpFunc is Dump that renders keys using render.
	DumpFunc(w io.Writer, render func(T) string) error
	//Corrupt returns whether the tree has corrupt structures, when the
	//ordering between some node and its subtrees is violated.
	Corrupt() bool
}
