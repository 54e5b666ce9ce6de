package sstmerge

import "github.com/mikhailwahib/sstable/internal/cbor"

// heapEntry is a (key, input_index) indirection: the actual reader and
// index live in the owners slice in Merge, indexed by inputIndex. This
// avoids moving a *sstable.Reader through container/heap's Push/Pop/Swap
// machinery — only this small struct moves.
type heapEntry struct {
	inputIndex int
	cursor     int
	key        cbor.Scalar
	offset     uint64
}

// entryHeap is a container/heap min-heap over heapEntry ordered by cmp,
// with ties broken by inputIndex (earlier input wins) then cursor
// (earlier position in that input's index wins).
type entryHeap struct {
	items []*heapEntry
	cmp   Compare
}

func (h entryHeap) Len() int { return len(h.items) }

func (h entryHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if c := h.cmp(a.key, b.key); c != 0 {
		return c < 0
	}
	if a.inputIndex != b.inputIndex {
		return a.inputIndex < b.inputIndex
	}
	return a.cursor < b.cursor
}

func (h entryHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *entryHeap) Push(x any) { h.items = append(h.items, x.(*heapEntry)) }

func (h *entryHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	return item
}
