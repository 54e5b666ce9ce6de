// Package sstmerge implements the k-way external merge engine: given a
// list of independently-owned (reader, index) pairs, each pre-sorted by
// the caller into the desired total order, it emits all records in that
// combined order to a sink.
package sstmerge

import (
	"container/heap"
	"fmt"

	"github.com/mikhailwahib/sstable/internal/cbor"
	"github.com/mikhailwahib/sstable/internal/sstable"
	"github.com/mikhailwahib/sstable/internal/sstemit"
)

// ErrDanglingOffset is returned when an index entry's offset does not
// yield a record from its data reader — an invariant violation between
// the index file and the data file it describes.
var ErrDanglingOffset = fmt.Errorf("sstmerge: index offset does not yield a record")

// Compare orders two decoded keys and returns <0, 0, >0. Natural and
// CBOR-canonical comparisons (NaturalCompare, CanonicalCompare) both
// satisfy this shape; the cmp argument to Merge selects which one a given
// merge uses.
type Compare func(a, b cbor.Scalar) int

// Input is one source table in a merge: a reader positioned over its data
// file and the in-memory index the caller has already sorted into the
// table's contribution to the merge order.
type Input struct {
	Reader *sstable.Reader
	Index  []cbor.IndexEntry
}

// Merge drains every Input in combined order — determined by cmp, which
// must agree with how each Input's Index was sorted — and writes each
// record to sink. Ties between equal keys across inputs are broken first
// by the input's position in inputs (earlier wins), then by index-cursor
// position, matching the order duplicate keys would read out of a single
// table.
//
// Merging zero inputs emits nothing and returns nil. Merging one input is
// equivalent to reading it in index order. The caller owns closing each
// Input's Reader; Merge does not close them.
func Merge(inputs []Input, sink sstemit.Sink, cmp Compare) error {
	h := &entryHeap{cmp: cmp}
	heap.Init(h)

	owners := make([]Input, len(inputs))
	copy(owners, inputs)

	for i, in := range owners {
		if len(in.Index) == 0 {
			continue
		}
		heap.Push(h, &heapEntry{inputIndex: i, cursor: 0, key: in.Index[0].Key, offset: in.Index[0].Offset})
	}

	for h.Len() > 0 {
		e := heap.Pop(h).(*heapEntry)
		in := owners[e.inputIndex]

		if err := in.Reader.SeekTo(e.offset); err != nil {
			return fmt.Errorf("sstmerge: %w: %v", ErrDanglingOffset, err)
		}
		it := in.Reader.Iterator()
		if !it.Next() {
			if err := it.Err(); err != nil {
				return fmt.Errorf("sstmerge: %w: %v", ErrDanglingOffset, err)
			}
			return fmt.Errorf("sstmerge: %w at offset %d", ErrDanglingOffset, e.offset)
		}

		if err := sink.Emit(it.Key(), it.Value()); err != nil {
			return fmt.Errorf("sstmerge: emit: %w", err)
		}

		next := e.cursor + 1
		if next < len(in.Index) {
			heap.Push(h, &heapEntry{
				inputIndex: e.inputIndex,
				cursor:     next,
				key:        in.Index[next].Key,
				offset:     in.Index[next].Offset,
			})
		}
	}

	return nil
}
