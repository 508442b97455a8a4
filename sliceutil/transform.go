package sliceutil

// Filter returns a new slice holding the elements of collection that satisfy
// predicate.
func Filter[T any](collection []T, predicate func(T) bool) []T {
	if len(collection) == 0 {
		return []T{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	// Heuristic pre-allocation of capacity
	res := make([]T, 0, len(collection)/2)
	for _, v := range collection {
		if predicate(v) {
			res = append(res, v)
		}
	}
	return res
}

// FilterInPlace filters the slice with zero memory allocation.
// Note: It modifies the underlying array of the original slice.
func FilterInPlace[T any](collection []T, predicate func(T) bool) []T {
	if len(collection) == 0 {
		return collection
	}
	_ = collection[len(collection)-1]

	idx := 0
	for i, v := range collection {
		if predicate(v) {
			if i != idx {
				collection[idx] = v
			}
			idx++
		}
	}

	// allow GC to reclaim memory
	clear(collection[idx:])

	return collection[:idx]
}
