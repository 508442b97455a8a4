package seqs

import (
	"errors"
	"iter"
)

// Span is a half-open index interval [Start, Stop) over an indexable collection.
type Span struct {
	Start int
	Stop  int
}

// RemovableList is the surface a removal scope needs from its backing
// collection: a forward iterator plus index-range deletion.
// *lists.ArrayList[T] satisfies it, and OfSlice adapts a plain slice.
type RemovableList[T any] interface {
	// Values returns a forward iterator over the collection.
	Values() iter.Seq[T]
	// RemoveRange deletes the elements in [start, stop).
	RemoveRange(start, stop int) error
}

// SafeIterator is a single-use forward view over a backing collection that
// lets the consumer mark elements for removal while iterating. Marks are
// batched into contiguous spans and applied to the backing collection when
// the scope flushes, so in-flight iteration never sees shifted indices.
//
// The backing collection must not be mutated by anything else between
// RemoveLater and Flush.
type SafeIterator[T any] struct {
	backing RemovableList[T]
	pos     int
	pending []Span
}

// RemoveLater begins a removal scope over backing. The returned iterator is
// freshly allocated, its cursor sits before the first element, and nothing
// touches the backing collection until Flush. Callers are expected to pair
// RemoveLater with a deferred Flush:
//
//	it := seqs.RemoveLater(seqs.OfSlice(&names))
//	defer it.Flush()
//	for name := range it.Values() {
//		if unwanted(name) {
//			it.RemoveCurrent()
//		}
//	}
//
// WithRemoveLater wraps this pairing when a closure is more convenient.
func RemoveLater[T any](backing RemovableList[T]) *SafeIterator[T] {
	return &SafeIterator[T]{
		backing: backing,
		pos:     -1,
		// The empty sentinel span keeps RemoveCurrent free of emptiness checks.
		pending: []Span{{Start: 0, Stop: 0}},
	}
}

// Values returns the scope's lazy, forward-only, single-pass view of the
// backing collection. Each yielded element advances the cursor exactly once.
// Ranging over the result a second time is not supported.
func (si *SafeIterator[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range si.backing.Values() {
			si.pos++
			if !yield(v) {
				return
			}
		}
	}
}

// Index reports the cursor: the zero-based position of the element most
// recently produced by Values, or -1 before the first element.
func (si *SafeIterator[T]) Index() int {
	return si.pos
}

// RemoveCurrent marks the element most recently produced by Values for
// removal at Flush. Contiguous marked positions coalesce into one span, so
// the pending set grows with the number of removal runs, not the number of
// removed elements. Under the coalescing rule, marking the same position a
// second time or marking before the first element has been produced leaves
// the pending set unchanged.
func (si *SafeIterator[T]) RemoveCurrent() {
	last := &si.pending[len(si.pending)-1]
	if si.pos-last.Stop <= 0 {
		// Inside or adjacent to the last span: extend it.
		last.Stop = si.pos + 1
		return
	}
	si.pending = append(si.pending, Span{Start: si.pos, Stop: si.pos + 1})
}

// Flush applies every pending span to the backing collection and clears the
// pending set. Spans are applied highest indices first so deleting one never
// shifts a span that is still waiting. Errors reported by the backing
// collection are collected and joined; every span is still attempted.
// Flushing an already-flushed scope is a no-op.
func (si *SafeIterator[T]) Flush() error {
	var errs []error
	for i := len(si.pending) - 1; i >= 0; i-- {
		sp := si.pending[i]
		if err := si.backing.RemoveRange(sp.Start, sp.Stop); err != nil {
			errs = append(errs, err)
		}
	}
	si.pending = si.pending[:0]
	return errors.Join(errs...)
}

// WithRemoveLater runs fn inside a fresh removal scope over backing and
// guarantees the flush on every exit path: a normal return, an error return,
// and a panic out of fn (the panic continues propagating after the pending
// removals have been applied). An error returned by fn takes precedence
// over a flush error.
func WithRemoveLater[T any](backing RemovableList[T], fn func(*SafeIterator[T]) error) (err error) {
	si := RemoveLater(backing)
	defer func() {
		ferr := si.Flush()
		if err == nil {
			err = ferr
		}
	}()
	return fn(si)
}
