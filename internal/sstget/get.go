// Package sstget implements the two-path key lookup: binary search over a
// loaded index plus a seek when the sidecar index is present, or a linear
// scan of the data file when it is absent.
package sstget

import (
	"errors"
	"fmt"
	"os"

	"github.com/mikhailwahib/sstable/internal/cbor"
	"github.com/mikhailwahib/sstable/internal/sstable"
)

// Match is one (key, value) pair found for a lookup, alongside the path it
// came from.
type Match struct {
	Path  string
	Key   cbor.Scalar
	Value cbor.Scalar
}

// noLimit marks an absent match cap: emit every match.
const noLimit = 0

// Get looks up key across every path in order. A missing data file is not
// an error: it is skipped with a reported notice via onMissing (nil is
// fine to ignore it). n is the per-path match cap; 0 means unlimited.
//
// A per-path index miss on the fast path stops that path's contribution
// without affecting any other path in paths — it must never short-circuit
// the remaining paths.
func Get(paths []string, key cbor.Scalar, n int, onMissing func(path string)) ([]Match, error) {
	var matches []Match

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				if onMissing != nil {
					onMissing(path)
				}
				continue
			}
			return nil, fmt.Errorf("sstget: stat %q: %w", path, err)
		}

		found, err := getFromPath(path, key, n)
		if err != nil {
			return nil, err
		}
		matches = append(matches, found...)
	}

	return matches, nil
}

func getFromPath(path string, key cbor.Scalar, n int) ([]Match, error) {
	r, err := sstable.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("sstget: open %q: %w", path, err)
	}
	defer r.Close()

	idxPath := sstable.DeriveIndexPath(path)
	if _, err := os.Stat(idxPath); err == nil {
		return getFastPath(r, path, idxPath, key, n)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("sstget: stat %q: %w", idxPath, err)
	}

	return getSlowPath(r, path, key, n)
}

// getFastPath binary searches the loaded (natural-order) index. A miss
// returns immediately with no matches for this path — absence here does
// not imply absence in any other path being scanned.
func getFastPath(r *sstable.Reader, path, idxPath string, key cbor.Scalar, n int) ([]Match, error) {
	entries, err := sstable.LoadIndex(idxPath)
	if err != nil {
		return nil, fmt.Errorf("sstget: load index %q: %w", idxPath, err)
	}
	cbor.SortNatural(entries)

	pos, ok := cbor.BinarySearchFirstNatural(entries, key)
	if !ok {
		return nil, nil
	}

	if err := r.SeekTo(entries[pos].Offset); err != nil {
		return nil, fmt.Errorf("sstget: seek %q: %w", path, err)
	}

	var matches []Match
	it := r.Iterator()
	for it.Next() {
		if cbor.NaturalCompare(it.Key(), key) != 0 {
			break
		}
		matches = append(matches, Match{Path: path, Key: it.Key(), Value: it.Value()})
		if n != noLimit && len(matches) >= n {
			break
		}
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("sstget: read %q: %w", path, err)
	}
	return matches, nil
}

// getSlowPath linearly scans the data file; a missing index is not an
// error here, it is the expected trigger for this path.
func getSlowPath(r *sstable.Reader, path string, key cbor.Scalar, n int) ([]Match, error) {
	var matches []Match
	it := r.Iterator()
	for it.Next() {
		if cbor.NaturalCompare(it.Key(), key) != 0 {
			continue
		}
		matches = append(matches, Match{Path: path, Key: it.Key(), Value: it.Value()})
		if n != noLimit && len(matches) >= n {
			break
		}
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("sstget: scan %q: %w", path, err)
	}
	return matches, nil
}
