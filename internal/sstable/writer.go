package sstable

import (
	"fmt"
	"os"

	"github.com/mikhailwahib/sstable/internal/bytestream"
	"github.com/mikhailwahib/sstable/internal/cbor"
)

// Writer builds an SSTable data+index file pair. Append calls are strictly
// ordered: the on-disk byte order matches call order, and the index file
// gains exactly one entry per data record.
type Writer struct {
	dataPath  string
	indexPath string
	data      *bytestream.AppendWriter
	index     *bytestream.AppendWriter
	closed    bool
}

// NewWriter opens (creating if necessary) the data file at dataPath and its
// sidecar index file, both in append mode. opts is optional; at most the
// first value is used.
func NewWriter(dataPath string, opts ...Options) (*Writer, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	o = o.FillDefaults(dataPath)

	data, err := bytestream.NewAppendWriter(dataPath, o.BufferSize)
	if err != nil {
		return nil, fmt.Errorf("sstable: open data file %q: %w", dataPath, err)
	}
	index, err := bytestream.NewAppendWriter(o.IndexPath, o.BufferSize)
	if err != nil {
		_ = data.Close()
		return nil, fmt.Errorf("sstable: open index file %q: %w", o.IndexPath, err)
	}

	return &Writer{
		dataPath:  dataPath,
		indexPath: o.IndexPath,
		data:      data,
		index:     index,
	}, nil
}

// Append writes one (k, v) record. The record's data offset is captured
// before any byte of it is written, so it is exact even if a later write in
// this same call fails.
//
// Write order is data-key, data-value, index-key, index-offset: this order
// is part of the on-disk contract and must not be reordered.
func (w *Writer) Append(k, v cbor.Scalar) error {
	if w.closed {
		return fmt.Errorf("sstable: write to closed writer %q", w.dataPath)
	}

	offset := w.data.Offset()

	if _, err := w.data.Write(cbor.Encode(k)); err != nil {
		return fmt.Errorf("sstable: write key: %w", err)
	}
	if _, err := w.data.Write(cbor.Encode(v)); err != nil {
		return fmt.Errorf("sstable: write value: %w", err)
	}
	if _, err := w.index.Write(cbor.Encode(k)); err != nil {
		return fmt.Errorf("sstable: write index key: %w", err)
	}
	if _, err := w.index.Write(cbor.EncodeUint64(uint64(offset))); err != nil {
		return fmt.Errorf("sstable: write index offset: %w", err)
	}
	return nil
}

// Flush flushes both buffered writers without fsyncing.
func (w *Writer) Flush() error {
	if err := w.data.Flush(); err != nil {
		return fmt.Errorf("sstable: flush data file: %w", err)
	}
	if err := w.index.Flush(); err != nil {
		return fmt.Errorf("sstable: flush index file: %w", err)
	}
	return nil
}

// Close flushes then fsyncs both underlying files, then closes them.
// Dropping a Writer without calling Close leaves any buffered tail
// unwritten; this is documented, not corrupting of prior records.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	var firstErr error
	if err := w.data.Sync(); err != nil {
		firstErr = fmt.Errorf("sstable: sync data file: %w", err)
	}
	if err := w.index.Sync(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("sstable: sync index file: %w", err)
	}
	if err := w.data.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("sstable: close data file: %w", err)
	}
	if err := w.index.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("sstable: close index file: %w", err)
	}
	return firstErr
}

// IntoFiles flushes and fsyncs both writers, then releases the Writer: it
// must not be used again afterward. The caller takes ownership of both
// *os.File handles (e.g. to rename them into place) and is responsible for
// closing them.
func (w *Writer) IntoFiles() (dataPath string, dataFile *os.File, indexPath string, indexFile *os.File, err error) {
	if w.closed {
		return "", nil, "", nil, fmt.Errorf("sstable: into-files of closed writer %q", w.dataPath)
	}
	if err := w.data.Sync(); err != nil {
		return "", nil, "", nil, fmt.Errorf("sstable: sync data file: %w", err)
	}
	if err := w.index.Sync(); err != nil {
		return "", nil, "", nil, fmt.Errorf("sstable: sync index file: %w", err)
	}
	w.closed = true
	dp, df := w.data.File()
	ip, idxf := w.index.File()
	return dp, df, ip, idxf, nil
}

// DataPath returns the data file path.
func (w *Writer) DataPath() string { return w.dataPath }

// IndexPath returns the sidecar index file path.
func (w *Writer) IndexPath() string { return w.indexPath }
