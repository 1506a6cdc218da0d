package Trees

import (
	"cmp"
	"fmt"
	"golang.org/x/exp/constraints"
	"io"
)

// BSTree is an unbalanced binary search tree used as a set. Nodes live in an
// arena addressed by indexes of type S, so S bounds the number of keys the tree
// can hold at once: inserting beyond it panics with a CapacityError.
// Lookups are O(log n) on average for randomly built trees and O(n) in the worst case;
// there's no rebalancing.
type BSTree[T any, S constraints.Unsigned] struct {
	base[S]
	vs  []T //v[i] corresponds to ifs[i+1]
	cmp func(a, b T) int
}

var _ Tree[int] = (*BSTree[int, uint])(nil)

// New empty tree of cmp.Ordered keys. hint is the number of keys to reserve space for.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *BSTree[T, S] {
	return NewFunc[T, S](hint, cmp.Compare[T])
}

// NewFunc creates an empty tree whose keys are ordered by cmp, which returns a
// negative number when a<b, a positive number when a>b and 0 when they're equal.
// The tree holds at most the maximum value of S keys at once, Insert panics with a
// CapacityError past that. Use uint unless the keys are known to fit a smaller type.
func NewFunc[T any, S constraints.Unsigned](hint S, cmp func(a, b T) int) *BSTree[T, S] {
	ifs := make([]info[S], 1, uint64(hint)+1)
	return &BSTree[T, S]{base[S]{ifs: ifs}, make([]T, 0, hint), cmp}
}

// locate the position where v is or would be, and the node it holds, 0 if it's empty.
func (u *BSTree[T, S]) locate(v T) (p pos[S], curI S) {
	for curI = u.root; curI != 0; {
		if c := u.cmp(v, u.vs[curI-1]); c < 0 {
			p, curI = pos[S]{curI, false}, u.ifs[curI].l
		} else if c > 0 {
			p, curI = pos[S]{curI, true}, u.ifs[curI].r
		} else {
			return
		}
	}
	return
}

func (u *BSTree[T, S]) alloc(v T) S {
	if i := u.popFree(); i != 0 {
		u.vs[i-1] = v
		return i
	}
	i := u.grow()
	u.vs = append(u.vs, v)
	return i
}

func (u *BSTree[T, S]) Insert(v T) bool {
	p, curI := u.locate(v)
	if curI != 0 {
		return false
	}
	i := u.alloc(v)
	*u.slot(p) = i //slot after alloc, alloc may move ifs.
	u.sz++
	return true
}

func (u *BSTree[T, S]) Contains(v T) bool {
	_, curI := u.locate(v)
	return curI != 0
}

// Erase v. A node with two children takes the key of its in-order successor,
// the minimum of its right subtree, which is spliced out instead.
func (u *BSTree[T, S]) Erase(v T) bool {
	p, curI := u.locate(v)
	if curI == 0 {
		return false
	}
	if si := u.unlink(p, curI); si != curI {
		u.vs[curI-1] = u.vs[si-1]
		curI = si
	}
	u.vs[curI-1] = *new(T)
	u.addFree(curI)
	u.sz--
	return true
}

func (u *BSTree[T, S]) Dump(w io.Writer) error {
	return u.DumpFunc(w, func(v T) string {
		return fmt.Sprint(v)
	})
}

func (u *BSTree[T, S]) DumpFunc(w io.Writer, render func(T) string) error {
	return u.preOrder(func(curI S, level int) (err error) {
		if curI == 0 {
			_, err = fmt.Fprintf(w, "%*s (nil)\n", level, "")
		} else {
			_, err = fmt.Fprintf(w, "%*s %s\n", level, "", render(u.vs[curI-1]))
		}
		return
	})
}

// Corrupt checks every key against the bounds set by its ancestors, and that
// the number of reachable nodes is Size.
func (u *BSTree[T, S]) Corrupt() bool {
	type frame struct {
		i      S
		lo, hi *T
	}
	var n S
	for st := []frame{{i: u.root}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.i == 0 {
			continue
		}
		v := &u.vs[top.i-1]
		if top.lo != nil && u.cmp(*top.lo, *v) >= 0 || top.hi != nil && u.cmp(*v, *top.hi) >= 0 {
			return true
		}
		if n++; n > u.sz { //a cycle or a leaked node.
			return true
		}
		st = append(st, frame{u.ifs[top.i].l, top.lo, v}, frame{u.ifs[top.i].r, v, top.hi})
	}
	return n != u.sz
}

// Clear the tree, keeping the allocated arrays.
func (u *BSTree[T, S]) Clear() {
	u.clrIfs()
	clear(u.vs)
	u.vs = u.vs[:0]
}
