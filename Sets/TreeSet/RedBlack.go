package TreeSet

import (
	"fmt"
	"github.com/emirpasic/gods/trees/redblacktree"
	"io"
)

// RedBlack set on top of github.com/emirpasic/gods/trees/redblacktree. Elements are stored as keys with no value.
type RedBlack[E any] struct {
	t *redblacktree.Tree
}

func NewRedBlack[E any](cmp func(a, b E) int) *RedBlack[E] {
	return &RedBlack[E]{redblacktree.NewWith(func(a, b interface{}) int {
		return cmp(a.(E), b.(E))
	})}
}

func (u *RedBlack[E]) Insert(e E) bool {
	if u.t.GetNode(e) != nil {
		return false
	}
	u.t.Put(e, struct{}{})
	return true
}

func (u *RedBlack[E]) Contains(e E) bool {
	return u.t.GetNode(e) != nil
}

func (u *RedBlack[E]) Erase(e E) bool {
	if u.t.GetNode(e) == nil {
		return false
	}
	u.t.Remove(e)
	return true
}

func (u *RedBlack[E]) Size() uint {
	return uint(u.t.Size())
}

func (u *RedBlack[E]) Dump(w io.Writer) error {
	return dumpPreOrder(w, u.t.Root, func(n *redblacktree.Node) (*redblacktree.Node, *redblacktree.Node) {
		return n.Left, n.Right
	}, func(n *redblacktree.Node) string {
		return fmt.Sprint(n.Key)
	})
}
