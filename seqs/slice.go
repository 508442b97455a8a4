package seqs

import (
	"fmt"
	"iter"
	"slices"

	"sift/sliceutil"
)

// ErrSpanOutOfRange reports a removal span that does not fit the slice.
var ErrSpanOutOfRange = fmt.Errorf("span out of range")

// sliceList adapts a plain slice to the RemovableList surface. It holds a
// pointer to the slice header so deletions are visible to the caller.
type sliceList[T any] struct {
	data *[]T
}

// OfSlice wraps s so a removal scope can iterate it and delete from it in
// place. The caller keeps using s afterwards; its length shrinks as spans
// are removed.
func OfSlice[T any](s *[]T) RemovableList[T] {
	return sliceList[T]{data: s}
}

func (sl sliceList[T]) Values() iter.Seq[T] {
	return slices.Values(*sl.data)
}

func (sl sliceList[T]) RemoveRange(start, stop int) error {
	if start < 0 || stop > len(*sl.data) || start > stop {
		return fmt.Errorf("%w: [%d, %d) of %d", ErrSpanOutOfRange, start, stop, len(*sl.data))
	}
	*sl.data = sliceutil.DeleteRange(*sl.data, start, stop)
	return nil
}
