package seqs

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"

	"sift/queues"
)

// sourceHead is one merge input's current front element.
type sourceHead[T any] struct {
	value  T
	source int
}

// Merge lazily merges ascending sources into a single ascending sequence.
// Every source must itself be sorted ascending; ties between sources break
// arbitrarily. The merge ends when all sources are exhausted, so sources of
// different lengths (or empty ones) are fine.
func Merge[T constraints.Ordered](sources ...iter.Seq[T]) iter.Seq[T] {
	return MergeFunc(cmp.Compare[T], sources...)
}

// MergeFunc is Merge with an explicit three-way comparator. Each source must
// be sorted ascending under compare. The merge is fully lazy: it keeps one
// buffered element per live source in a priority queue and pulls a
// replacement only after yielding.
func MergeFunc[T any](compare func(a, b T) int, sources ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		next := make([]func() (T, bool), len(sources))
		for i, src := range sources {
			pull, stop := iter.Pull(src)
			defer stop()
			next[i] = pull
		}

		heads := queues.NewComparatorPriorityQueue(len(sources), func(a, b sourceHead[T]) int {
			return compare(a.value, b.value)
		})
		for i := range next {
			if v, ok := next[i](); ok {
				heads.Enqueue(sourceHead[T]{value: v, source: i})
			}
		}

		for {
			head, ok := heads.Dequeue()
			if !ok {
				return
			}
			if !yield(head.value) {
				return
			}
			// Refill from the source that just lost its head.
			if v, ok := next[head.source](); ok {
				heads.Enqueue(sourceHead[T]{value: v, source: head.source})
			}
		}
	}
}
