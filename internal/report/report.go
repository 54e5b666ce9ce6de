// Package report builds and renders the per-table "info" summary: paths,
// sizes, entry count, min/max key, and which orderings (if either) the
// sidecar index currently satisfies.
package report

import (
	"fmt"
	"os"

	"github.com/mikhailwahib/sstable/internal/cbor"
	"github.com/mikhailwahib/sstable/internal/sstable"
	"gopkg.in/yaml.v3"
)

// Report is a single table's info summary.
type Report struct {
	DataPath  string `yaml:"data_path"`
	DataSize  int64  `yaml:"data_size"`
	IndexPath string `yaml:"index_path"`
	IndexSize int64  `yaml:"index_size"`

	EntryCount int    `yaml:"entry_count"`
	MinKey     string `yaml:"min_key,omitempty"`
	MaxKey     string `yaml:"max_key,omitempty"`

	NaturalSorted   bool `yaml:"natural_sorted"`
	CanonicalSorted bool `yaml:"canonical_sorted"`
	Unique          bool `yaml:"unique"`

	// BloomFilter and BlockCompression are reserved fields: this system
	// never builds either, so they are always reported empty/false. They
	// exist so info's shape does not change if that ever becomes untrue.
	BloomFilter      bool `yaml:"bloom_filter"`
	BlockCompression bool `yaml:"block_compression"`
}

// Build loads the index for dataPath (if present) and summarizes the
// table. A missing index file is not an error: the natural/canonical
// sorted flags are simply false and entry count is read from the data
// file's record count instead.
func Build(dataPath string) (Report, error) {
	r := Report{DataPath: dataPath, IndexPath: sstable.DeriveIndexPath(dataPath)}

	if stat, err := os.Stat(dataPath); err == nil {
		r.DataSize = stat.Size()
	} else {
		return Report{}, fmt.Errorf("report: stat data file %q: %w", dataPath, err)
	}

	var entries []cbor.IndexEntry
	if stat, err := os.Stat(r.IndexPath); err == nil {
		r.IndexSize = stat.Size()
		entries, err = sstable.LoadIndex(r.IndexPath)
		if err != nil {
			return Report{}, err
		}
	}

	if len(entries) > 0 {
		r.EntryCount = len(entries)
		r.NaturalSorted = cbor.IsSortedNatural(entries)
		r.CanonicalSorted = cbor.IsSortedCanonical(entries)
		r.MinKey, r.MaxKey = minMaxKey(entries)
		r.Unique = allKeysUnique(entries)
		return r, nil
	}

	count, minKey, maxKey, unique, err := scanDataFile(dataPath)
	if err != nil {
		return Report{}, err
	}
	r.EntryCount = count
	r.MinKey, r.MaxKey = minKey, maxKey
	r.Unique = unique
	return r, nil
}

func minMaxKey(entries []cbor.IndexEntry) (min, max string) {
	sorted := make([]cbor.IndexEntry, len(entries))
	copy(sorted, entries)
	cbor.SortNatural(sorted)
	return scalarString(sorted[0].Key), scalarString(sorted[len(sorted)-1].Key)
}

func allKeysUnique(entries []cbor.IndexEntry) bool {
	sorted := make([]cbor.IndexEntry, len(entries))
	copy(sorted, entries)
	cbor.SortNatural(sorted)
	for i := 1; i < len(sorted); i++ {
		if cbor.NaturalCompare(sorted[i-1].Key, sorted[i].Key) == 0 {
			return false
		}
	}
	return true
}

func scanDataFile(dataPath string) (count int, minKey, maxKey string, unique bool, err error) {
	r, err := sstable.NewReader(dataPath)
	if err != nil {
		return 0, "", "", false, err
	}
	defer r.Close()

	seen := make(map[string]struct{})
	var min, max cbor.Scalar
	haveMin := false

	it := r.Iterator()
	for it.Next() {
		k := it.Key()
		count++
		seen[scalarString(k)] = struct{}{}
		if !haveMin || cbor.NaturalCompare(k, min) < 0 {
			min = k
			haveMin = true
		}
		if cbor.NaturalCompare(k, max) > 0 || count == 1 {
			max = k
		}
	}
	if err := it.Err(); err != nil {
		return 0, "", "", false, fmt.Errorf("report: scan %q: %w", dataPath, err)
	}
	if count == 0 {
		return 0, "", "", true, nil
	}
	return count, scalarString(min), scalarString(max), len(seen) == count, nil
}

func scalarString(s cbor.Scalar) string {
	switch s.Kind {
	case cbor.KindText:
		return s.Text
	case cbor.KindBytes:
		return fmt.Sprintf("%x", s.Bytes)
	case cbor.KindUint64:
		return fmt.Sprintf("%d", s.U64)
	default:
		return ""
	}
}

// Render formats the report in a YAML-like block, matching the style of
// the "info" external interface.
func (r Report) Render() (string, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("report: render: %w", err)
	}
	return string(out), nil
}
