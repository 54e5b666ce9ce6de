package sstable

import (
	"errors"
	"fmt"

	"github.com/mikhailwahib/sstable/internal/bytestream"
	"github.com/mikhailwahib/sstable/internal/cbor"
)

// LoadIndex reads an entire sidecar index file into memory. No ordering is
// assumed on load — the caller sorts it (cbor.SortNatural or
// cbor.SortCanonical) before searching. A zero-byte or missing-on-disk-but-
// opened file yields an empty, non-nil slice.
func LoadIndex(path string) ([]cbor.IndexEntry, error) {
	bs, err := bytestream.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("sstable: open index file %q: %w", path, err)
	}
	defer bs.Close()

	entries := make([]cbor.IndexEntry, 0)
	for {
		k, err := cbor.ReadScalar(bs.R())
		if err != nil {
			if errors.Is(err, bytestream.ErrEndOfStream) {
				break
			}
			return nil, fmt.Errorf("sstable: read index key in %q: %w", path, err)
		}
		offset, err := cbor.ReadUint64(bs.R())
		if err != nil {
			if errors.Is(err, bytestream.ErrEndOfStream) {
				err = fmt.Errorf("%w: index entry ends after its key", cbor.ErrFraming)
			}
			return nil, fmt.Errorf("sstable: read index offset in %q: %w", path, err)
		}
		entries = append(entries, cbor.IndexEntry{Key: k, Offset: offset})
	}
	return entries, nil
}
