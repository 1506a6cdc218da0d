package Trees

import (
	"bytes"
	"golang.org/x/exp/constraints"
	"math/rand"
	"slices"
	"strings"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))
var cache [4]uint

func (u *BSTree[T, S]) _depth(curI S, d uint) {
	cur := u.ifs[curI]
	if cur.l != 0 {
		u._depth(cur.l, d+1)
	}
	if cur.r != 0 {
		u._depth(cur.r, d+1)
	}
	if cur.l == 0 && cur.r == 0 {
		cache[0]++
		cache[1] += d
	}
}
func (u *BSTree[T, S]) depth() float32 {
	if u.root == 0 {
		return 0
	}
	cache[0], cache[1] = 0, 0
	u._depth(u.root, 1)
	return float32(cache[1]) / float32(cache[0])
}

// at follows path, a string of 'l' and 'r', from the root. Returns false if it ends on an empty position.
func (u *BSTree[T, S]) at(path string) (T, bool) {
	curI := u.root
	for i := 0; i < len(path) && curI != 0; i++ {
		if path[i] == 'l' {
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	if curI == 0 {
		return *new(T), false
	}
	return u.vs[curI-1], true
}

func expectAt[T comparable, S constraints.Unsigned](t *testing.T, tree *BSTree[T, S], path string, want T) {
	t.Helper()
	if v, ok := tree.at(path); !ok {
		t.Errorf("position %q is empty, want %v", path, want)
	} else if v != want {
		t.Errorf("position %q is %v, want %v", path, v, want)
	}
}

func expectEmpty[T any, S constraints.Unsigned](t *testing.T, tree *BSTree[T, S], path string) {
	t.Helper()
	if v, ok := tree.at(path); ok {
		t.Errorf("position %q is %v, want empty", path, v)
	}
}

const (
	tAddN        uint16 = 40000
	tAddValRange        = 20000
)

func TestInsert(t *testing.T) {
	tree := New[int, uint16](1)
	content := make(map[int]struct{})
	for range tAddN {
		b := rg.Intn(tAddValRange)
		_, in := content[b]
		if tree.Insert(b) == in {
			t.Errorf("insert of key %v returned %v", b, in)
		}
		content[b] = struct{}{}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	t.Logf("depth: %f, size: %d.\n", tree.depth(), tree.Size())
	for k := range content {
		if !tree.Contains(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	for _, v := range tree.vs {
		if _, in := content[v]; !in {
			t.Errorf("tree has non existent key %v", v)
		}
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
}

func TestErase(t *testing.T) {
	tree := New[int, uint16](1)
	content := make(map[int]struct{})
	if tree.Erase(0) != false {
		t.Errorf("empty tree has non existent key %v", 0)
	}
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		tree.Insert(a[i])
		content[a[i]] = struct{}{}
	}
	for i := range rg.Intn(len(a)) {
		_, in := content[a[i]]
		if tree.Erase(a[i]) != in {
			t.Errorf("failed to delete key %v", a[i])
		}
		if tree.Erase(a[i]) == true {
			t.Errorf("can delete a second time key %v", a[i])
		}
		if tree.Contains(a[i]) {
			t.Errorf("tree still has deleted key %v", a[i])
		}
		delete(content, a[i])
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	t.Logf("depth: %f, size: %d.\n", tree.depth(), tree.Size())
	for k := range content {
		if !tree.Contains(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	{
		empties := make(map[int]struct{})
		for a := tree.popFree(); a != 0; a = tree.popFree() {
			empties[int(a)] = struct{}{}
		}
		if len(empties)+int(tree.Size()) != len(tree.vs) {
			t.Errorf("%d free and %d used indexes, want %d in total", len(empties), tree.Size(), len(tree.vs))
		}
		for i, v := range tree.vs {
			if _, in := empties[i+1]; !in {
				if _, in := content[v]; !in {
					t.Errorf("tree has non existent key %v at %d", v, i)
				}
			}
		}
	}
}

func TestInsertErase(t *testing.T) {
	tree := New[int, uint16](1)
	content := make(map[int]struct{})
	for round := range 4 {
		a := make([]int, rg.Intn(int(tAddN)))
		for i := range a {
			a[i] = rg.Intn(tAddValRange)
			_, in := content[a[i]]
			if tree.Insert(a[i]) == in {
				t.Errorf("round %d: insert of key %v returned %v", round, a[i], in)
			}
			content[a[i]] = struct{}{}
		}
		for i := range rg.Intn(len(a) + 1) {
			_, in := content[a[i]]
			if tree.Erase(a[i]) != in {
				t.Errorf("round %d: failed to delete key %v", round, a[i])
			}
			delete(content, a[i])
		}
		if tree.Corrupt() {
			t.Fatalf("round %d: tree is corrupt", round)
		}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	t.Logf("depth: %f, size: %d.\n", tree.depth(), tree.Size())
	for k := range content {
		if !tree.Contains(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	//indexes are reused, the arena never grew beyond the number of distinct keys.
	if len(tree.vs) > tAddValRange {
		t.Errorf("arena has %d nodes, want at most %d", len(tree.vs), tAddValRange)
	}
}

func TestFreeReuse(t *testing.T) {
	tree := New[int, uint](0)
	for k := range 8 {
		tree.Insert(k)
	}
	n := len(tree.vs)
	for round := range 100 {
		k := round % 8
		if !tree.Erase(k) {
			t.Fatalf("round %d: failed to delete key %v", round, k)
		}
		if !tree.Insert(k + 8*(round+1)) {
			t.Fatalf("round %d: failed to insert key %v", round, k+8*(round+1))
		}
		if len(tree.vs) != n || len(tree.ifs) != n+1 {
			t.Fatalf("round %d: arena grew to %d nodes, want %d", round, len(tree.vs), n)
		}
	}
	if tree.Size() != 8 || tree.Corrupt() {
		t.Errorf("tree size is %d, corrupt: %v", tree.Size(), tree.Corrupt())
	}
}

func TestFixedSequence(t *testing.T) {
	tree := New[int, uint](0)
	for k := 1; k < 10; k++ {
		if tree.Contains(k) {
			t.Errorf("empty tree has key %v", k)
		}
	}
	for _, k := range []int{5, 2, 7, 4, 1, 3, 6, 9, 8} {
		tree.Insert(k)
	}
	for k := 1; k < 10; k++ {
		if !tree.Contains(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	for _, k := range []int{5, 3, 8} {
		tree.Erase(k)
	}
	for k := 1; k < 10; k++ {
		if want := k != 5 && k != 3 && k != 8; tree.Contains(k) != want {
			t.Errorf("Contains(%v) is %v, want %v", k, !want, want)
		}
	}
	if tree.Size() != 6 {
		t.Errorf("tree size is %d, want %d", tree.Size(), 6)
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
}

func TestEraseTwoChildren(t *testing.T) {
	tree := New[int, uint8](0)
	for _, k := range []int{2, 1, 4, 3, 5} {
		tree.Insert(k)
	}
	tree.Erase(4)
	expectAt(t, tree, "", 2)
	expectAt(t, tree, "l", 1)
	expectAt(t, tree, "r", 5)
	expectAt(t, tree, "rl", 3)
	expectEmpty(t, tree, "rr")

	tree.Erase(2)
	expectAt(t, tree, "", 3)
	expectAt(t, tree, "l", 1)
	expectAt(t, tree, "r", 5)
	expectEmpty(t, tree, "rl")
	expectEmpty(t, tree, "rr")
	if tree.Size() != 3 || tree.Corrupt() {
		t.Errorf("tree size is %d, corrupt: %v", tree.Size(), tree.Corrupt())
	}
}

func TestEraseSuccessorWithRightChild(t *testing.T) {
	tree := New[int, uint8](0)
	for _, k := range []int{10, 5, 20, 15, 30, 17, 16} {
		tree.Insert(k)
	}
	tree.Erase(10)
	expectAt(t, tree, "", 15)
	expectAt(t, tree, "r", 20)
	expectAt(t, tree, "rl", 17)
	expectAt(t, tree, "rll", 16)
	expectAt(t, tree, "rr", 30)
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
}

func TestEraseOneChild(t *testing.T) {
	tree := New[int, uint8](0)
	for _, k := range []int{8, 4, 2, 3, 12, 14} {
		tree.Insert(k)
	}
	tree.Erase(4)
	expectAt(t, tree, "l", 2)
	expectAt(t, tree, "lr", 3)
	tree.Erase(12)
	expectAt(t, tree, "r", 14)
	tree.Erase(8)
	expectAt(t, tree, "", 14)
	expectAt(t, tree, "l", 2)
	expectEmpty(t, tree, "r")
	tree.Erase(14)
	expectAt(t, tree, "", 2)
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
}

func TestEraseAbsent(t *testing.T) {
	tree := New[int, uint](0)
	if tree.Erase(42) {
		t.Errorf("erased 42 from an empty tree")
	}
	for _, k := range []int{5, 2, 7} {
		tree.Insert(k)
	}
	var before, after bytes.Buffer
	if err := tree.Dump(&before); err != nil {
		t.Fatal(err)
	}
	if tree.Erase(42) {
		t.Errorf("erased absent key 42")
	}
	if err := tree.Dump(&after); err != nil {
		t.Fatal(err)
	}
	if before.String() != after.String() {
		t.Errorf("erase of absent key changed the tree:\n%s\n%s", before.String(), after.String())
	}
}

func TestDuplicateInsert(t *testing.T) {
	once, twice := New[string, uint](0), New[string, uint](0)
	for _, k := range []string{"mies", "aap", "noot"} {
		once.Insert(k)
		twice.Insert(k)
		if twice.Insert(k) {
			t.Errorf("second insert of %v succeeded", k)
		}
	}
	var a, b strings.Builder
	once.Dump(&a)
	twice.Dump(&b)
	if a.String() != b.String() || once.Size() != twice.Size() {
		t.Errorf("duplicate inserts changed the tree:\n%s\n%s", a.String(), b.String())
	}
}

func TestDump(t *testing.T) {
	tree := New[int, uint](0)
	var sb strings.Builder
	if err := tree.Dump(&sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != " (nil)\n" {
		t.Errorf("empty dump is %q", sb.String())
	}
	for _, k := range []int{2, 1, 3} {
		tree.Insert(k)
	}
	sb.Reset()
	if err := tree.Dump(&sb); err != nil {
		t.Fatal(err)
	}
	want := " 2\n" +
		"  1\n" +
		"   (nil)\n" +
		"   (nil)\n" +
		"  3\n" +
		"   (nil)\n" +
		"   (nil)\n"
	if sb.String() != want {
		t.Errorf("dump is\n%s\nwant\n%s", sb.String(), want)
	}
}

type pair struct {
	age  uint32
	name string
}

func TestNewFunc(t *testing.T) {
	tree := NewFunc[pair, uint](4, func(a, b pair) int {
		if a.age != b.age {
			if a.age < b.age {
				return -1
			}
			return 1
		}
		return strings.Compare(a.name, b.name)
	})
	tree.Insert(pair{10, "aap"})
	tree.Insert(pair{20, "noot"})
	tree.Insert(pair{15, "mies"})
	tree.Insert(pair{10, "zus"})
	if !tree.Contains(pair{10, "aap"}) || tree.Contains(pair{20, "aap"}) {
		t.Errorf("wrong membership")
	}
	var sb strings.Builder
	tree.DumpFunc(&sb, func(p pair) string {
		return p.name
	})
	lines := strings.Fields(sb.String())
	if !slices.Equal(lines, []string{"aap", "(nil)", "noot", "mies", "(nil)", "zus", "(nil)", "(nil)", "(nil)"}) {
		t.Errorf("dump is\n%s", sb.String())
	}
}

func TestDegenerate(t *testing.T) {
	const n = 10000
	tree := New[int, uint32](n)
	for i := range n {
		tree.Insert(i)
	}
	var buf bytes.Buffer
	if err := tree.Dump(&buf); err != nil {
		t.Fatal(err)
	}
	if lines := bytes.Count(buf.Bytes(), []byte("\n")); lines != 2*n+1 {
		t.Errorf("dump has %d lines, want %d", lines, 2*n+1)
	}
	for i := range n {
		if !tree.Erase(i) {
			t.Errorf("failed to delete key %v", i)
		}
	}
	if tree.Size() != 0 || tree.root != 0 {
		t.Errorf("tree size is %d after deleting everything", tree.Size())
	}
}

func TestCorrupt(t *testing.T) {
	tree := New[int, uint](0)
	for _, k := range []int{5, 2, 7} {
		tree.Insert(k)
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
	tree.vs[tree.ifs[tree.root].l-1] = 9
	if !tree.Corrupt() {
		t.Errorf("tree with 9 left of 5 isn't corrupt")
	}
}

func TestClear(t *testing.T) {
	tree := New[int, uint](0)
	for i := range 100 {
		tree.Insert(i)
	}
	tree.Clear()
	if tree.Size() != 0 || tree.Contains(5) {
		t.Errorf("tree isn't empty after clear")
	}
	tree.Insert(5)
	if !tree.Contains(5) || tree.Size() != 1 {
		t.Errorf("tree isn't usable after clear")
	}
}

func TestCapacity(t *testing.T) {
	tree := New[int, uint8](0)
	for i := range 255 {
		tree.Insert(i)
	}
	defer func() {
		if _, ok := recover().(CapacityError); !ok {
			t.Errorf("inserting the 256th key didn't panic with CapacityError")
		}
	}()
	tree.Insert(255)
}
