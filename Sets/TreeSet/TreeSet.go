package TreeSet

import (
	"fmt"
	"github.com/g-m-twostay/sortedcontainer/Sets"
	"github.com/g-m-twostay/sortedcontainer/Trees"
	"io"
	"strings"
)

// Kinds of trees that can back a set, accepted by New.
const (
	KindBST      = "bst"
	KindBTree    = "btree"
	KindLLRB     = "llrb"
	KindRedBlack = "redblack"
)

var Kinds = []string{KindBST, KindBTree, KindLLRB, KindRedBlack}

type UnknownKindError struct {
	Kind string
}

func (e UnknownKindError) Error() string {
	return fmt.Sprintf("unknown tree kind %q, want one of %s", e.Kind, strings.Join(Kinds, "|"))
}

// New OrderedSet backed by the tree named kind, ordering elements with cmp.
func New[E any](kind string, cmp func(a, b E) int) (Sets.OrderedSet[E], error) {
	switch kind {
	case KindBST:
		return NewBST(cmp), nil
	case KindBTree:
		return NewBTree(cmp), nil
	case KindLLRB:
		return NewLLRB(cmp), nil
	case KindRedBlack:
		return NewRedBlack(cmp), nil
	}
	return nil, UnknownKindError{kind}
}

// NewBST is the unbalanced binary search tree of Trees.
func NewBST[E any](cmp func(a, b E) int) *Trees.BSTree[E, uint] {
	return Trees.NewFunc[E, uint](0, cmp)
}

// dumpPreOrder writes the tree below root like Trees.BSTree does, for trees of pointer nodes.
func dumpPreOrder[N comparable](w io.Writer, root N, children func(N) (N, N), render func(N) string) error {
	type frame struct {
		n     N
		level int
	}
	var nilN N
	for st := []frame{{root, 0}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.n == nilN {
			if _, err := fmt.Fprintf(w, "%*s (nil)\n", top.level, ""); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%*s %s\n", top.level, "", render(top.n)); err != nil {
			return err
		}
		l, r := children(top.n)
		st = append(st, frame{r, top.level + 1}, frame{l, top.level + 1})
	}
	return nil
}
