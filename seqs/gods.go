package seqs

import (
	"iter"

	"github.com/emirpasic/gods/containers"
)

// FromGods adapts a gods container iterator into an iter.Seq. The iterator
// is consumed from its current position, so call Begin (or pass a fresh
// iterator) to read the whole container. gods containers are untyped;
// an element that does not assert to T panics.
//
// Ordered containers such as treeset iterate in sorted order, which makes
// them ready-made Merge inputs.
func FromGods[T any](it containers.IteratorWithIndex) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.Value().(T)) {
				return
			}
		}
	}
}
