package TreeSet

import (
	"fmt"
	"github.com/petar/GoLLRB/llrb"
	"io"
)

type llrbItem[E any] struct {
	v   E
	cmp func(a, b E) int
}

func (i llrbItem[E]) Less(than llrb.Item) bool {
	return i.cmp(i.v, than.(llrbItem[E]).v) < 0
}

// LLRB set on top of the left-leaning red-black tree of github.com/petar/GoLLRB.
type LLRB[E any] struct {
	t   *llrb.LLRB
	cmp func(a, b E) int
}

func NewLLRB[E any](cmp func(a, b E) int) *LLRB[E] {
	return &LLRB[E]{llrb.New(), cmp}
}

func (u *LLRB[E]) item(e E) llrbItem[E] {
	return llrbItem[E]{e, u.cmp}
}

func (u *LLRB[E]) Insert(e E) bool {
	if u.t.Has(u.item(e)) {
		return false
	}
	u.t.InsertNoReplace(u.item(e))
	return true
}

func (u *LLRB[E]) Contains(e E) bool {
	return u.t.Has(u.item(e))
}

func (u *LLRB[E]) Erase(e E) bool {
	return u.t.Delete(u.item(e)) != nil
}

func (u *LLRB[E]) Size() uint {
	return uint(u.t.Len())
}

func (u *LLRB[E]) Dump(w io.Writer) error {
	return dumpPreOrder(w, u.t.Root(), func(n *llrb.Node) (*llrb.Node, *llrb.Node) {
		return n.Left, n.Right
	}, func(n *llrb.Node) string {
		if n.Black {
			return fmt.Sprint(n.Item.(llrbItem[E]).v)
		}
		return fmt.Sprintf("%v (red)", n.Item.(llrbItem[E]).v)
	})
}
