package seqs

import "iter"

// Pair holds two values drawn from one or two sequences.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Pairwise yields each element of seq together with its successor:
// (s0, s1), (s1, s2), and so on. A sequence of n elements produces
// max(0, n-1) pairs; empty and single-element inputs produce nothing.
// The input is consumed in a single pass.
func Pairwise[T any](seq iter.Seq[T]) iter.Seq[Pair[T, T]] {
	return func(yield func(Pair[T, T]) bool) {
		var prev T
		first := true
		for v := range seq {
			if first {
				prev = v
				first = false
				continue
			}
			if !yield(Pair[T, T]{V1: prev, V2: v}) {
				return
			}
			prev = v
		}
	}
}

// Zip pairs seq1 and seq2 element by element, stopping as soon as either
// sequence is exhausted.
func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(Pair[T1, T2]{V1: v1, V2: v2}) {
				return
			}
		}
	}
}

// Enumerate pairs each element of seq with its zero-based position.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}
