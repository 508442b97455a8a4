/*
Package seqs provides lazy iteration utilities built on Go 1.23+ iterators (iter.Seq).

Its centerpiece is the deferred removal scope: [RemoveLater] wraps a mutable
indexable collection and hands out a [SafeIterator] whose consumer may call
RemoveCurrent on any element it visits. Marked positions are coalesced into
contiguous index spans and deleted from the backing collection in one batch
when the scope flushes — including when the consumer's loop fails partway
through, so a deferred Flush (or [WithRemoveLater]) guarantees the backing
collection ends up with exactly the already-marked elements removed.

	names := []string{"moritz", "harry", "edgar", "goofy", "dominik", "gorik"}
	it := seqs.RemoveLater(seqs.OfSlice(&names))
	defer it.Flush()
	for name := range it.Values() {
		if strings.Contains(name, "g") {
			it.RemoveCurrent()
		}
	}
	// names == ["moritz", "harry", "dominik"]

Around it the package collects small lazy helpers:

  - [Merge] and [MergeFunc]: k-way merge of sorted sequences, one buffered
    element per live source.
  - [Pairwise], [Zip], [Enumerate]: windowing and pairing.
  - [Filter], [Map], [Take], [Skip], [Concat]: the usual transformations.
  - [Range], [Repeat], [First], [Last], [Count]: generators and sinks.
  - [FromGods]: interop with emirpasic/gods container iterators.

Everything here is single-threaded and pull-based; sequences are evaluated
only as far as the consumer ranges over them.
*/
package seqs
