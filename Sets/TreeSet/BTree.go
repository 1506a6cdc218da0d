package TreeSet

import (
	"fmt"
	"github.com/google/btree"
	"io"
)

const btreeDegree = 32

// BTree set on top of github.com/google/btree.
type BTree[E any] struct {
	t *btree.BTreeG[E]
}

func NewBTree[E any](cmp func(a, b E) int) *BTree[E] {
	return &BTree[E]{btree.NewG[E](btreeDegree, func(a, b E) bool {
		return cmp(a, b) < 0
	})}
}

func (u *BTree[E]) Insert(e E) bool {
	if u.t.Has(e) {
		return false
	}
	u.t.ReplaceOrInsert(e)
	return true
}

func (u *BTree[E]) Contains(e E) bool {
	return u.t.Has(e)
}

func (u *BTree[E]) Erase(e E) bool {
	_, ok := u.t.Delete(e)
	return ok
}

func (u *BTree[E]) Size() uint {
	return uint(u.t.Len())
}

// Dump writes the elements in order, the nodes of a btree aren't exposed.
func (u *BTree[E]) Dump(w io.Writer) (err error) {
	u.t.Ascend(func(e E) bool {
		_, err = fmt.Fprintf(w, " %v\n", e)
		return err == nil
	})
	return
}
