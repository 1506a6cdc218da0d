package Queues

type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item, or an *EmptyQueueError when there's none.
	Pop() (T, error)
	//Peek at the oldest item without removing it. The second return value is false when the queue is empty.
	Peek() (T, bool)
	Empty() bool
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
