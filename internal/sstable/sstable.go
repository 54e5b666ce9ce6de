package sstable

import (
	"fmt"
	"sync"

	"github.com/mikhailwahib/sstable/internal/cbor"
)

// Table is a single data+index path pair opened in exactly one mode at a
// time: append (via a Writer) or read (via a Reader plus its loaded
// index). It exists for callers that want one handle per table without
// juggling Writer/Reader/index loading themselves.
type Table struct {
	mu sync.RWMutex

	dataPath  string
	opts      Options
	writer    *Writer
	reader    *Reader
	index     []cbor.IndexEntry
	appending bool
	reading   bool
}

// NewTable describes a table at dataPath without opening anything.
func NewTable(dataPath string, opts ...Options) *Table {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	return &Table{dataPath: dataPath, opts: o.FillDefaults(dataPath)}
}

// OpenForAppend opens the table's Writer.
func (t *Table) OpenForAppend() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.appending || t.reading {
		return fmt.Errorf("sstable: table %q already open", t.dataPath)
	}
	w, err := NewWriter(t.dataPath, t.opts)
	if err != nil {
		return err
	}
	t.writer = w
	t.appending = true
	return nil
}

// Append writes one record via the table's Writer.
func (t *Table) Append(k, v cbor.Scalar) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.appending {
		return fmt.Errorf("sstable: table %q not open for append", t.dataPath)
	}
	return t.writer.Append(k, v)
}

// OpenForRead opens the table's Reader and, if the sidecar index exists,
// loads it eagerly so callers can sort/search it.
func (t *Table) OpenForRead() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.appending || t.reading {
		return fmt.Errorf("sstable: table %q already open", t.dataPath)
	}
	r, err := NewReader(t.dataPath)
	if err != nil {
		return err
	}
	t.reader = r
	t.reading = true

	if idx, err := LoadIndex(t.opts.IndexPath); err == nil {
		t.index = idx
	}
	return nil
}

// Iterator returns a fresh iterator over the table's Reader.
func (t *Table) Iterator() (*Iterator, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.reading {
		return nil, fmt.Errorf("sstable: table %q not open for read", t.dataPath)
	}
	return t.reader.Iterator(), nil
}

// Index returns the in-memory index loaded by OpenForRead, which is nil if
// no sidecar index file existed.
func (t *Table) Index() []cbor.IndexEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.index
}

// Reader returns the underlying Reader, for callers needing direct seeks.
func (t *Table) Reader() *Reader {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.reader
}

// Close closes whichever mode is open, flushing and fsyncing a Writer.
func (t *Table) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var err error
	if t.appending {
		err = t.writer.Close()
		t.writer = nil
		t.appending = false
	}
	if t.reading {
		if cerr := t.reader.Close(); err == nil {
			err = cerr
		}
		t.reader = nil
		t.reading = false
	}
	return err
}

// DataPath returns the table's data file path.
func (t *Table) DataPath() string { return t.dataPath }

// IndexPath returns the table's sidecar index path.
func (t *Table) IndexPath() string { return t.opts.IndexPath }
