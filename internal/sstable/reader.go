package sstable

import (
	"errors"
	"fmt"

	"github.com/mikhailwahib/sstable/internal/bytestream"
	"github.com/mikhailwahib/sstable/internal/cbor"
)

// Reader streams typed (key, value) records from a data file, and supports
// seeking to a byte offset recovered from an index entry. It performs no
// record-boundary validation on seek: the caller's invariant is that the
// offset came from a valid index entry.
type Reader struct {
	path string
	bs   *bytestream.Reader
}

// NewReader opens the data file at path.
func NewReader(path string) (*Reader, error) {
	bs, err := bytestream.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("sstable: open data file %q: %w", path, err)
	}
	return &Reader{path: path, bs: bs}, nil
}

// SeekTo repositions the reader at a byte offset, typically one recovered
// from a loaded index entry. The next Iterator.Next call reads the record
// starting there.
func (r *Reader) SeekTo(offset uint64) error {
	if err := r.bs.SeekTo(int64(offset)); err != nil {
		return fmt.Errorf("sstable: seek to offset %d in %q: %w", offset, r.path, err)
	}
	return nil
}

// Close closes the underlying file.
func (r *Reader) Close() error { return r.bs.Close() }

// Path returns the data file path.
func (r *Reader) Path() string { return r.path }

// Iterator produces a lazy, finite, non-restartable sequence of (key,
// value) records over the reader it was created from.
func (r *Reader) Iterator() *Iterator {
	return &Iterator{reader: r}
}

// Iterator is a forward-only cursor over a Reader's records.
type Iterator struct {
	reader *Reader
	key    cbor.Scalar
	value  cbor.Scalar
	offset uint64
	err    error
	done   bool
}

// Next advances to the next record, returning false at a clean end of
// stream or after a fatal error; callers distinguish the two with Err.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}

	startOffset := it.reader.bs.Offset()
	k, err := cbor.ReadScalar(it.reader.bs.R())
	if err != nil {
		if errors.Is(err, bytestream.ErrEndOfStream) {
			it.done = true
			return false
		}
		it.err = fmt.Errorf("sstable: read key in %q: %w", it.reader.path, err)
		it.done = true
		return false
	}

	v, err := cbor.ReadScalar(it.reader.bs.R())
	if err != nil {
		// A value can never start a clean end of stream: its key already
		// read successfully, so any failure here is mid-record.
		if errors.Is(err, bytestream.ErrEndOfStream) {
			err = fmt.Errorf("%w: record ends after its key", cbor.ErrFraming)
		}
		it.err = fmt.Errorf("sstable: read value in %q: %w", it.reader.path, err)
		it.done = true
		return false
	}

	it.key, it.value = k, v
	it.offset = uint64(startOffset)
	return true
}

// Key returns the current record's key. Valid only after Next returns true.
func (it *Iterator) Key() cbor.Scalar { return it.key }

// Value returns the current record's value. Valid only after Next returns true.
func (it *Iterator) Value() cbor.Scalar { return it.value }

// Offset returns the byte offset at which the current record began. Valid
// only after Next returns true.
func (it *Iterator) Offset() uint64 { return it.offset }

// Err returns the fatal error that stopped iteration, if any. A clean end
// of stream leaves this nil.
func (it *Iterator) Err() error { return it.err }
