// Package sstable is a library for producing, reading, and merging sorted
// string tables: append-only, CBOR-encoded key/value files paired with
// sidecar index files, built for offline batch workflows.
//
// A table is a pair of files — a data file and a derived (or explicit)
// index file — each record CBOR-encoded as one of three kinds: unsigned
// 64-bit integer, byte string, or UTF-8 text string. Keys and values may
// differ in kind, but within one table each is fixed.
//
// Example usage:
//
//	w, err := sstable.NewWriter("orders.sst")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := w.Append(sstable.NewText("order-1"), sstable.NewText("shipped")); err != nil {
//		log.Fatal(err)
//	}
//	if err := w.Close(); err != nil {
//		log.Fatal(err)
//	}
//
//	r, err := sstable.NewReader("orders.sst")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//	for it := r.Iterator(); it.Next(); {
//		fmt.Println(it.Key(), it.Value())
//	}
package sstable

import (
	"fmt"

	"github.com/mikhailwahib/sstable/internal/cbor"
	"github.com/mikhailwahib/sstable/internal/report"
	intsstable "github.com/mikhailwahib/sstable/internal/sstable"
	"github.com/mikhailwahib/sstable/internal/sstemit"
	"github.com/mikhailwahib/sstable/internal/sstget"
	"github.com/mikhailwahib/sstable/internal/sstmerge"
)

// Scalar is one CBOR-representable key or value. Construct one with
// NewUint64, NewBytes, or NewText.
type Scalar = cbor.Scalar

// NewUint64 builds an unsigned-integer scalar.
func NewUint64(v uint64) Scalar { return cbor.NewUint64(v) }

// NewBytes builds a byte-string scalar.
func NewBytes(b []byte) Scalar { return cbor.NewBytes(b) }

// NewText builds a text-string scalar.
func NewText(s string) Scalar { return cbor.NewText(s) }

// Options configures a Writer's buffering and index path. The zero value
// is a valid default configuration.
type Options = intsstable.Options

// Writer appends (key, value) records to a table's data+index file pair.
type Writer = intsstable.Writer

// NewWriter opens (or creates) a table at dataPath for appending. opts is
// optional; at most the first value is used.
func NewWriter(dataPath string, opts ...Options) (*Writer, error) {
	return intsstable.NewWriter(dataPath, opts...)
}

// Reader streams or randomly accesses a table's records.
type Reader = intsstable.Reader

// NewReader opens a table's data file at path for reading.
func NewReader(path string) (*Reader, error) {
	return intsstable.NewReader(path)
}

// Iterator is a forward-only cursor over a Reader's records.
type Iterator = intsstable.Iterator

// IndexEntry is a (key, offset) pair as loaded from a sidecar index file.
type IndexEntry = cbor.IndexEntry

// LoadIndex reads an entire sidecar index file into memory, unsorted.
func LoadIndex(path string) ([]IndexEntry, error) {
	return intsstable.LoadIndex(path)
}

// DeriveIndexPath computes the conventional sidecar index path for a data
// path.
func DeriveIndexPath(dataPath string) string {
	return intsstable.DeriveIndexPath(dataPath)
}

// Match is one (key, value) pair found by Get, alongside the path it came
// from.
type Match = sstget.Match

// Get looks up key across every path in order, applying the per-path
// fast-path (index binary search) or slow-path (linear scan) algorithm. n
// caps matches per path; 0 means unlimited. onMissing, if non-nil, is
// called for each path whose data file does not exist; a missing file is
// not an error.
func Get(paths []string, key Scalar, n int, onMissing func(path string)) ([]Match, error) {
	return sstget.Get(paths, key, n, onMissing)
}

// Order selects which total order a Merge call combines its inputs under.
// It must match how the caller sorted each input's index beforehand.
type Order int

const (
	// Natural merges inputs sorted by the decoded key value.
	Natural Order = iota
	// Canonical merges inputs sorted by CBOR canonical byte order.
	Canonical
)

// MergeInput is one source table for Merge: its data path, to be opened
// and indexed internally.
type MergeInput struct {
	DataPath string
}

// Merge reads and sorts (per order) the index of every input, then
// k-way-merges their records into sink. It opens and closes each input's
// reader itself.
func Merge(inputs []MergeInput, sink sstemit.Sink, order Order) error {
	cmp := sstmerge.NaturalCompare
	if order == Canonical {
		cmp = sstmerge.CanonicalCompare
	}

	merged := make([]sstmerge.Input, 0, len(inputs))
	readers := make([]*Reader, 0, len(inputs))
	defer func() {
		for _, r := range readers {
			_ = r.Close()
		}
	}()

	for _, in := range inputs {
		r, err := NewReader(in.DataPath)
		if err != nil {
			return fmt.Errorf("sstable: open %q: %w", in.DataPath, err)
		}
		readers = append(readers, r)

		entries, err := LoadIndex(DeriveIndexPath(in.DataPath))
		if err != nil {
			return fmt.Errorf("sstable: load index for %q: %w", in.DataPath, err)
		}
		if order == Canonical {
			cbor.SortCanonical(entries)
		} else {
			cbor.SortNatural(entries)
		}

		merged = append(merged, sstmerge.Input{Reader: r, Index: entries})
	}

	return sstmerge.Merge(merged, sink, cmp)
}

// SSTableSink and TextSink are the two Merge/emit destinations.
type SSTableSink = sstemit.SSTableSink
type TextSink = sstemit.TextSink

// NewSSTableSink wraps w so Merge can write its combined output to a new table.
func NewSSTableSink(w *Writer) *SSTableSink { return sstemit.NewSSTableSink(w) }

// NewTextSink wraps an io.Writer so Merge can emit a tab-separated text stream.
var NewTextSink = sstemit.NewTextSink

// Report is a single table's info summary: paths, sizes, entry count,
// min/max key, and which orderings (if either) its sidecar index
// currently satisfies.
type Report = report.Report

// Info builds the info report for the table at dataPath.
func Info(dataPath string) (Report, error) {
	return report.Build(dataPath)
}
