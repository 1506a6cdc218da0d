package Trees

import (
	"fmt"
	"golang.org/x/exp/constraints"
)

// base is the key independent part of the tree: the arena of nodes and the
// list of released indexes.
type base[S constraints.Unsigned] struct {
	root, free, sz S         // free is the beginning of the linked list that contains all the free indexes, in which case we use l as next.
	ifs            []info[S] // 0 is the nil node. all index is based on ifs
}

// CapacityError is the panic value when the index type S can't address another node.
type CapacityError struct {
	Max uint64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("tree can't hold more than %d keys with this index type", e.Max)
}

// slot returns the reference held by p. The returned pointer is invalidated when ifs grows.
func (u *base[S]) slot(p pos[S]) *S {
	if p.owner == 0 {
		return &u.root
	} else if p.right {
		return &u.ifs[p.owner].r
	}
	return &u.ifs[p.owner].l
}

// adds a free index
func (u *base[S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// gets a free index. Returns 0 when there's no free index.
func (u *base[S]) popFree() S {
	b := u.free
	u.free = u.ifs[b].l
	u.ifs[b].l = 0
	return b
}

// grow the arena by one node, returning its index.
func (u *base[S]) grow() S {
	i := S(len(u.ifs))
	if int(i) != len(u.ifs) {
		panic(CapacityError{uint64(^S(0))})
	}
	u.ifs = append(u.ifs, info[S]{})
	return i
}

// detachMin unlinks the leftmost node of the subtree held by p and returns it.
// Its slot takes its right child, it can't have a left one.
func (u *base[S]) detachMin(p pos[S]) S {
	curI := *u.slot(p)
	for u.ifs[curI].l != 0 {
		p, curI = pos[S]{curI, false}, u.ifs[curI].l
	}
	*u.slot(p) = u.ifs[curI].r
	return curI
}

// unlink node curI held by p. Returns the index that's no longer in the tree.
// That's curI itself when it has less than two children, otherwise it's the
// in-order successor of curI, which the caller must move into curI.
func (u *base[S]) unlink(p pos[S], curI S) S {
	switch cur := u.ifs[curI]; {
	case cur.l == 0:
		*u.slot(p) = cur.r
	case cur.r == 0:
		*u.slot(p) = cur.l
	default:
		return u.detachMin(pos[S]{curI, true})
	}
	return curI
}

// preOrder visits every position of the tree, empty ones included as 0,
// with its depth. Uses an explicit stack so degenerate trees don't recurse deeply.
func (u *base[S]) preOrder(f func(curI S, level int) error) error {
	type frame struct {
		i     S
		level int
	}
	for st := []frame{{u.root, 0}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if err := f(top.i, top.level); err != nil {
			return err
		}
		if top.i != 0 {
			cur := u.ifs[top.i]
			st = append(st, frame{cur.r, top.level + 1}, frame{cur.l, top.level + 1})
		}
	}
	return nil
}

// Size of the tree.
func (u *base[S]) Size() S {
	return u.sz
}

func (u *base[S]) clrIfs() {
	clear(u.ifs)
	u.ifs = u.ifs[:1]
	u.root, u.free, u.sz = 0, 0, 0
}
