package queues

import "container/heap"

// comparatorHeap adapts a three-way comparator to container/heap. The
// smallest element under compare sits at the root.
type comparatorHeap[T any] struct {
	data    []T
	compare func(a, b T) int
}

func (ch *comparatorHeap[T]) Len() int {
	return len(ch.data)
}

func (ch *comparatorHeap[T]) Less(i, j int) bool {
	return ch.compare(ch.data[i], ch.data[j]) < 0
}

func (ch *comparatorHeap[T]) Swap(i, j int) {
	ch.data[i], ch.data[j] = ch.data[j], ch.data[i]
}

func (ch *comparatorHeap[T]) Push(x any) {
	ch.data = append(ch.data, x.(T))
}

func (ch *comparatorHeap[T]) Pop() any {
	old := ch.data
	n := len(old)
	v := old[n-1]

	// clear the vacated slot, let it be GCed
	var zero T
	old[n-1] = zero

	ch.data = old[:n-1]
	return v
}

// ComparatorPriorityQueue is a priority queue ordered by a three-way
// comparator: Dequeue returns the element for which compare reports the
// smallest value. Invert the comparator for max-queue behavior.
type ComparatorPriorityQueue[T any] struct {
	heap *comparatorHeap[T]
}

// NewComparatorPriorityQueue creates a ComparatorPriorityQueue with the
// specified initial capacity. compare must return a negative value when a
// orders before b, zero when they tie, and a positive value otherwise.
func NewComparatorPriorityQueue[T any](initCapacity int, compare func(a, b T) int) *ComparatorPriorityQueue[T] {
	if initCapacity < 0 {
		initCapacity = 0
	}
	if compare == nil {
		panic("sift.ComparatorPriorityQueue: compare function cannot be nil")
	}
	ch := comparatorHeap[T]{
		data:    make([]T, 0, initCapacity),
		compare: compare,
	}
	heap.Init(&ch)

	return &ComparatorPriorityQueue[T]{heap: &ch}
}

// Enqueue adds value to the queue.
func (pq *ComparatorPriorityQueue[T]) Enqueue(value T) {
	heap.Push(pq.heap, value)
}

// Dequeue removes and returns the smallest element under the comparator.
func (pq *ComparatorPriorityQueue[T]) Dequeue() (value T, ok bool) {
	if pq.heap.Len() == 0 {
		return value, false
	}
	return heap.Pop(pq.heap).(T), true
}

// Peek returns the smallest element without removing it.
func (pq *ComparatorPriorityQueue[T]) Peek() (value T, ok bool) {
	if pq.heap.Len() == 0 {
		return value, false
	}
	return pq.heap.data[0], true
}

func (pq *ComparatorPriorityQueue[T]) Size() int {
	return pq.heap.Len()
}

func (pq *ComparatorPriorityQueue[T]) IsEmpty() bool {
	return pq.heap.Len() == 0
}
