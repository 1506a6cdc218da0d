package Stats

import (
	"fmt"
	"sync/atomic"

	"github.com/alphadose/haxmap"
	"github.com/cespare/xxhash"
	"github.com/cornelk/hashmap"
	"github.com/puzpuzpuz/xsync/v3"
)

// Counter of word occurrences. Add is safe for concurrent use, Range and Len
// are meant to be called once counting is over.
type Counter interface {
	Add(word string)
	Range(f func(word string, n uint64) bool)
	Len() int
}

const (
	CounterHaxMap  = "haxmap"
	CounterHashMap = "hashmap"
	CounterXSync   = "xsync"
)

// NewCounter backed by the concurrent map named kind.
func NewCounter(kind string) (Counter, error) {
	switch kind {
	case CounterHaxMap:
		m := haxmap.New[string, *atomic.Uint64]()
		m.SetHasher(hashString)
		return haxCounter{m}, nil
	case CounterHashMap:
		return hashCounter{hashmap.New[string, *atomic.Uint64]()}, nil
	case CounterXSync:
		return xsyncCounter{xsync.NewMapOf[string, *atomic.Uint64]()}, nil
	}
	return nil, fmt.Errorf("unknown counter %q, want %s|%s|%s", kind, CounterHaxMap, CounterHashMap, CounterXSync)
}

func hashString(s string) uintptr {
	return uintptr(xxhash.Sum64String(s))
}

func newCount() *atomic.Uint64 {
	return new(atomic.Uint64)
}

type haxCounter struct {
	m *haxmap.Map[string, *atomic.Uint64]
}

func (u haxCounter) Add(word string) {
	n, _ := u.m.GetOrCompute(word, newCount)
	n.Add(1)
}

func (u haxCounter) Range(f func(string, uint64) bool) {
	u.m.ForEach(func(w string, n *atomic.Uint64) bool {
		return f(w, n.Load())
	})
}

func (u haxCounter) Len() int {
	return int(u.m.Len())
}

type hashCounter struct {
	m *hashmap.Map[string, *atomic.Uint64]
}

func (u hashCounter) Add(word string) {
	n, ok := u.m.Get(word)
	if !ok {
		n, _ = u.m.GetOrInsert(word, newCount())
	}
	n.Add(1)
}

func (u hashCounter) Range(f func(string, uint64) bool) {
	u.m.Range(func(w string, n *atomic.Uint64) bool {
		return f(w, n.Load())
	})
}

func (u hashCounter) Len() int {
	return u.m.Len()
}

type xsyncCounter struct {
	m *xsync.MapOf[string, *atomic.Uint64]
}

func (u xsyncCounter) Add(word string) {
	n, _ := u.m.LoadOrCompute(word, newCount)
	n.Add(1)
}

func (u xsyncCounter) Range(f func(string, uint64) bool) {
	u.m.Range(func(w string, n *atomic.Uint64) bool {
		return f(w, n.Load())
	})
}

func (u xsyncCounter) Len() int {
	return u.m.Size()
}
