package lists

import "iter"

// List is a mutable, ordered, indexable collection of elements of type T.
type List[T any] interface {
	// Add appends one or more elements to the end of the list.
	Add(values ...T)

	// Insert inserts an element at the specified index.
	// Returns an error if index < 0 or index > Size().
	Insert(index int, value T) error

	// Remove removes and returns the element at the specified index.
	// Returns an error if index is out of bounds.
	Remove(index int) (T, error)

	// RemoveRange removes the elements in [start, stop).
	// Returns an error if the span does not fit the list.
	RemoveRange(start, stop int) error

	// Set modifies the element at the specified index.
	Set(index int, value T) error

	// Get retrieves the element at the specified index.
	Get(index int) (T, error)

	// Size returns the current number of elements in the list.
	Size() int

	// IsEmpty checks if the list is empty.
	IsEmpty() bool

	// Clear removes every element and releases the element storage.
	Clear()

	// ToSlice copies the list into a native slice.
	ToSlice() []T

	// Values returns a forward iterator over the elements.
	Values() iter.Seq[T]
}
