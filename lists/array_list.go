package lists

import (
	"fmt"
	"iter"
	"slices"
)

var ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")

// ArrayList is a slice-backed List. Index access is O(1); Insert, Remove and
// RemoveRange shift the tail, so they are O(n).
type ArrayList[T any] struct {
	data []T
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

// NewArrayListOf builds an ArrayList holding a copy of values.
func NewArrayListOf[T any](values ...T) *ArrayList[T] {
	al := NewArrayList[T](len(values))
	al.Add(values...)
	return al
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > len(al.data) {
		return ErrIndexOutOfBounds
	}

	var zero T
	al.data = append(al.data, zero)
	copy(al.data[index+1:], al.data[index:])
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return ErrIndexOutOfBounds
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	removed := al.data[index]
	copy(al.data[index:], al.data[index+1:])
	// clear the last element, let it be GCed
	clear(al.data[len(al.data)-1:])
	al.data = al.data[:len(al.data)-1]
	return removed, nil
}

// RemoveRange removes the elements in [start, stop).
func (al *ArrayList[T]) RemoveRange(start, stop int) error {
	if start < 0 || stop > len(al.data) || start > stop {
		return ErrIndexOutOfBounds
	}
	if start == stop {
		return nil
	}

	copy(al.data[start:], al.data[stop:])

	// clear the tail to prevent memory leaks
	newLen := len(al.data) - (stop - start)
	clear(al.data[newLen:])
	al.data = al.data[:newLen]
	return nil
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
}

func (al *ArrayList[T]) ToSlice() []T {
	out := make([]T, len(al.data))
	copy(out, al.data)
	return out
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}
