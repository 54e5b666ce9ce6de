// Package sstable implements the on-disk SSTable file pair — a CBOR-encoded
// data file and its sidecar index file — along with the streaming and
// random-access reads built on top of them.
package sstable

// DefaultBufferSize is the buffered I/O size used when a caller does not
// override it in Options.
const DefaultBufferSize = 8 * 1024

// Options configures a Writer or a Table. The zero value is valid; FillDefaults
// is applied internally so callers never need to construct one by hand for
// default behaviour.
type Options struct {
	// BufferSize sizes the bufio layer over each underlying file. Zero
	// means DefaultBufferSize.
	BufferSize int
	// IndexPath overrides the derived sidecar index path (see
	// DeriveIndexPath). Empty means derive it from the data path.
	IndexPath string
}

// FillDefaults returns a copy of o with zero fields replaced by defaults.
func (o Options) FillDefaults(dataPath string) Options {
	filled := o
	if filled.BufferSize <= 0 {
		filled.BufferSize = DefaultBufferSize
	}
	if filled.IndexPath == "" {
		filled.IndexPath = DeriveIndexPath(dataPath)
	}
	return filled
}
