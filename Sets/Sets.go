package Sets

import "io"

// OrderedSet of elements under a total order. Insert and Erase report whether
// they changed the set; inserting a present element or erasing an absent one
// is a no-op.
type OrderedSet[E any] interface {
	Insert(E) bool
	Contains(E) bool
	Erase(E) bool
	Size() uint
	//Dump writes the structure backing the set, for diagnostics only.
	Dump(io.Writer) error
}
