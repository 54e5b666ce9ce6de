package cbor

import "sort"

// IndexEntry is one (key, offset) pair as loaded from a sidecar index
// file: the decoded key scalar and the byte offset of its record in the
// paired data file.
type IndexEntry struct {
	Key    Scalar
	Offset uint64
}

// SortNatural orders entries by NaturalCompare on Key, ascending, with
// ties broken by Offset so that equal keys come back out in the order
// they were written.
func SortNatural(entries []IndexEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if c := NaturalCompare(entries[i].Key, entries[j].Key); c != 0 {
			return c < 0
		}
		return entries[i].Offset < entries[j].Offset
	})
}

// SortCanonical orders entries by CBOR canonical byte order on the
// encoded Key, ascending, with ties broken by Offset ascending so equal
// keys are read back in append order. This is cbor_sort.
func SortCanonical(entries []IndexEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if c := Compare(Encode(entries[i].Key), Encode(entries[j].Key)); c != 0 {
			return c < 0
		}
		return entries[i].Offset < entries[j].Offset
	})
}

// IsSortedNatural reports whether entries are already in SortNatural order.
func IsSortedNatural(entries []IndexEntry) bool {
	for i := 1; i < len(entries); i++ {
		if c := NaturalCompare(entries[i-1].Key, entries[i].Key); c > 0 {
			return false
		} else if c == 0 && entries[i-1].Offset > entries[i].Offset {
			return false
		}
	}
	return true
}

// IsSortedCanonical reports whether entries are already in SortCanonical
// order. This is is_cbor_sorted.
func IsSortedCanonical(entries []IndexEntry) bool {
	for i := 1; i < len(entries); i++ {
		c := Compare(Encode(entries[i-1].Key), Encode(entries[i].Key))
		if c > 0 {
			return false
		} else if c == 0 && entries[i-1].Offset > entries[i].Offset {
			return false
		}
	}
	return true
}

// BinarySearchFirstNatural finds the first entry whose key naturally
// equals target in a SortNatural-ordered list. ok is false if no entry
// matches, in which case idx is the insertion position.
func BinarySearchFirstNatural(entries []IndexEntry, target Scalar) (idx int, ok bool) {
	return binarySearchFirst(entries, func(e IndexEntry) int { return NaturalCompare(e.Key, target) })
}

// BinarySearchFirstCanonical finds the first entry whose encoded key
// canonically equals target (already CBOR-encoded) in a
// SortCanonical-ordered list. ok is false if no entry matches, in which
// case idx is the insertion position. This is cbor_binary_search_first.
func BinarySearchFirstCanonical(entries []IndexEntry, target []byte) (idx int, ok bool) {
	return binarySearchFirst(entries, func(e IndexEntry) int { return Compare(Encode(e.Key), target) })
}

// binarySearchFirst locates any matching element via sort.Search, then
// walks back while the preceding element still compares equal, so that
// duplicate keys (contiguous, since the index preserves write order)
// resolve to the first occurrence.
func binarySearchFirst(entries []IndexEntry, cmp func(IndexEntry) int) (idx int, ok bool) {
	n := len(entries)
	pos := sort.Search(n, func(i int) bool { return cmp(entries[i]) >= 0 })
	if pos >= n || cmp(entries[pos]) != 0 {
		return pos, false
	}
	for pos > 0 && cmp(entries[pos-1]) == 0 {
		pos--
	}
	return pos, true
}
