package Queues

import (
	"sync/atomic"
)

type node[T any] struct {
	v  T
	nx atomic.Pointer[node[T]]
}

// syncLinkedQ is a lock free FIFO queue. headPtr points to a dummy node, whose
// next node is the head of the queue. tail may lag behind the real tail by one
// node, any goroutine seeing that moves it forward.
type syncLinkedQ[T any] struct {
	headPtr, tail atomic.Pointer[node[T]]
}

// NewConcurrentLinkedQueue that's safe for concurrent use by multiple producers and consumers.
func NewConcurrentLinkedQueue[T any]() Queue[T] {
	t := syncLinkedQ[T]{}
	a := new(node[T])
	t.headPtr.Store(a)
	t.tail.Store(a)
	return &t
}

// Push links item after the last node, then swings tail to it. A Push that finds
// tail lagging moves it first, so tail is never more than one node behind.
func (c *syncLinkedQ[T]) Push(item T) {
	newNode := &node[T]{v: item}
	var oldTail *node[T]
	for added := false; !added; {
		oldTail = c.tail.Load()
		if oldTailNext := oldTail.nx.Load(); oldTailNext != nil {
			c.tail.CompareAndSwap(oldTail, oldTailNext)
		} else {
			added = oldTail.nx.CompareAndSwap(nil, newNode)
		}
	}
	c.tail.CompareAndSwap(oldTail, newNode)
}

// Pop advances headPtr to the first node, which becomes the new dummy.
// When headPtr and tail meet while a node is linked, tail is moved first so
// headPtr never overtakes it.
func (c *syncLinkedQ[T]) Pop() (T, error) {
	var oldHead *node[T]
	for removed := false; !removed; {
		oldHeadPtr, oldTail := c.headPtr.Load(), c.tail.Load()
		oldHead = oldHeadPtr.nx.Load()
		if oldTail == oldHeadPtr {
			if oldHead == nil {
				return *new(T), &EmptyQueueError{}
			}
			c.tail.CompareAndSwap(oldTail, oldHead)
		} else {
			removed = c.headPtr.CompareAndSwap(oldHeadPtr, oldHead)
		}
	}
	return oldHead.v, nil
}

func (c *syncLinkedQ[T]) Peek() (T, bool) {
	if h := c.headPtr.Load().nx.Load(); h != nil {
		return h.v, true
	}
	return *new(T), false
}

func (c *syncLinkedQ[T]) Empty() bool {
	return c.headPtr.Load().nx.Load() == nil
}
