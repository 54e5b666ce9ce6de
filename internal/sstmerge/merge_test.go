package sstmerge

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/mikhailwahib/sstable/internal/cbor"
	"github.com/mikhailwahib/sstable/internal/sstable"
	"github.com/mikhailwahib/sstable/internal/sstemit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTable writes pairs to a fresh table under dir and returns an Input
// ready for Merge, with its index loaded and naturally sorted.
func buildTable(t *testing.T, dir, name string, pairs [][2]string) Input {
	t.Helper()
	path := filepath.Join(dir, name)
	w, err := sstable.NewWriter(path)
	require.NoError(t, err)
	for _, p := range pairs {
		require.NoError(t, w.Append(cbor.NewText(p[0]), cbor.NewText(p[1])))
	}
	require.NoError(t, w.Close())

	idx, err := sstable.LoadIndex(sstable.DeriveIndexPath(path))
	require.NoError(t, err)
	cbor.SortNatural(idx)

	r, err := sstable.NewReader(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	return Input{Reader: r, Index: idx}
}

func readAllText(t *testing.T, path string) []string {
	t.Helper()
	r, err := sstable.NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	var out []string
	it := r.Iterator()
	for it.Next() {
		out = append(out, it.Key().Text+":"+it.Value().Text)
	}
	require.NoError(t, it.Err())
	return out
}

func TestMergeThreeTables(t *testing.T) {
	dir := t.TempDir()
	inputs := []Input{
		buildTable(t, dir, "t1.sst", [][2]string{{"a", "1"}, {"b", "2"}}),
		buildTable(t, dir, "t2.sst", [][2]string{{"c", "3"}, {"d", "4"}}),
		buildTable(t, dir, "t3.sst", [][2]string{{"e", "5"}, {"f", "6"}}),
	}

	outPath := filepath.Join(dir, "out.sst")
	w, err := sstable.NewWriter(outPath)
	require.NoError(t, err)
	sink := sstemit.NewSSTableSink(w)

	require.NoError(t, Merge(inputs, sink, NaturalCompare))
	require.NoError(t, w.Close())

	assert.Equal(t, []string{"a:1", "b:2", "c:3", "d:4", "e:5", "f:6"}, readAllText(t, outPath))
}

func TestMergeSingleInputEqualsReadingItInOrder(t *testing.T) {
	dir := t.TempDir()
	pairs := [][2]string{{"x", "1"}, {"y", "2"}, {"z", "3"}}
	in := buildTable(t, dir, "only.sst", pairs)

	outPath := filepath.Join(dir, "out.sst")
	w, err := sstable.NewWriter(outPath)
	require.NoError(t, err)
	sink := sstemit.NewSSTableSink(w)

	require.NoError(t, Merge([]Input{in}, sink, NaturalCompare))
	require.NoError(t, w.Close())

	assert.Equal(t, []string{"x:1", "y:2", "z:3"}, readAllText(t, outPath))
}

func TestMergeZeroInputsEmitsNothing(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.sst")
	w, err := sstable.NewWriter(outPath)
	require.NoError(t, err)
	sink := sstemit.NewSSTableSink(w)

	require.NoError(t, Merge(nil, sink, NaturalCompare))
	require.NoError(t, w.Close())

	assert.Empty(t, readAllText(t, outPath))
}

func TestMergeDuplicateKeysAcrossInputsPreserveAllRecords(t *testing.T) {
	dir := t.TempDir()
	inputs := []Input{
		buildTable(t, dir, "t1.sst", [][2]string{{"foo", "bar"}}),
		buildTable(t, dir, "t2.sst", [][2]string{{"foo", "bar"}}),
	}

	outPath := filepath.Join(dir, "out.sst")
	w, err := sstable.NewWriter(outPath)
	require.NoError(t, err)
	sink := sstemit.NewSSTableSink(w)

	require.NoError(t, Merge(inputs, sink, NaturalCompare))
	require.NoError(t, w.Close())

	// Merge does not deduplicate: both "foo" records survive, earlier
	// input first.
	assert.Equal(t, []string{"foo:bar", "foo:bar"}, readAllText(t, outPath))
}

func TestMergeToTextSink(t *testing.T) {
	dir := t.TempDir()
	inputs := []Input{
		buildTable(t, dir, "t1.sst", [][2]string{{"a", "1"}}),
		buildTable(t, dir, "t2.sst", [][2]string{{"b", "2"}}),
	}

	var buf bytes.Buffer
	sink := sstemit.NewTextSink(&buf)
	require.NoError(t, Merge(inputs, sink, NaturalCompare))
	require.NoError(t, sink.Flush())

	assert.Equal(t, "a\t1\nb\t2\n", buf.String())
}
