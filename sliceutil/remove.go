package sliceutil

// DeleteRange removes the elements in [start, stop) from s and returns the
// shortened slice. The tail of the original backing array is cleared so the
// dropped elements can be collected. Panics when the span does not fit s.
func DeleteRange[T any](s []T, start, stop int) []T {
	if start < 0 || stop > len(s) || start > stop {
		panic("sliceutil.DeleteRange: span out of range")
	}
	if start == stop {
		return s
	}

	copy(s[start:], s[stop:])

	newLen := len(s) - (stop - start)
	clear(s[newLen:]) // let dropped elements be GCed
	return s[:newLen]
}

// DeleteSpans removes every [start, stop) span in spans from s. Spans must
// be sorted ascending and non-overlapping; they are applied highest-first so
// deleting one span never shifts a span that has not been applied yet.
func DeleteSpans[T any](s []T, spans [][2]int) []T {
	for i := len(spans) - 1; i >= 0; i-- {
		s = DeleteRange(s, spans[i][0], spans[i][1])
	}
	return s
}
