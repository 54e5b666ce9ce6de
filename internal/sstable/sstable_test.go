package sstable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mikhailwahib/sstable/internal/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	return dir
}

func TestDeriveIndexPath(t *testing.T) {
	assert.Equal(t, "foo.index.sst", DeriveIndexPath("foo.sst"))
	assert.Equal(t, "foo.index", DeriveIndexPath("foo"))
	assert.Equal(t, filepath.Join("dir", "foo.index.sst"), DeriveIndexPath(filepath.Join("dir", "foo.sst")))
}

func TestWriterReaderRoundTrip(t *testing.T) {
	dir := setup(t)
	dataPath := filepath.Join(dir, "table.sst")

	w, err := NewWriter(dataPath)
	require.NoError(t, err)

	records := []struct{ k, v string }{
		{"apple", "red"},
		{"banana", "yellow"},
		{"cherry", "dark red"},
	}
	for _, r := range records {
		require.NoError(t, w.Append(cbor.NewText(r.k), cbor.NewText(r.v)))
	}
	require.NoError(t, w.Close())

	r, err := NewReader(dataPath)
	require.NoError(t, err)
	defer r.Close()

	it := r.Iterator()
	var got []string
	for it.Next() {
		got = append(got, it.Key().Text+"="+it.Value().Text)
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []string{"apple=red", "banana=yellow", "cherry=dark red"}, got)
}

func TestEmptyDataFileYieldsNoRecords(t *testing.T) {
	dir := setup(t)
	dataPath := filepath.Join(dir, "empty.sst")

	w, err := NewWriter(dataPath)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := NewReader(dataPath)
	require.NoError(t, err)
	defer r.Close()

	it := r.Iterator()
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

func TestIndexOffsetsSeekBackToOriginalRecords(t *testing.T) {
	dir := setup(t)
	dataPath := filepath.Join(dir, "table.sst")

	w, err := NewWriter(dataPath)
	require.NoError(t, err)
	keys := []string{"a", "bb", "ccc", "dddd"}
	for _, k := range keys {
		require.NoError(t, w.Append(cbor.NewText(k), cbor.NewText("v-"+k)))
	}
	require.NoError(t, w.Close())

	entries, err := LoadIndex(DeriveIndexPath(dataPath))
	require.NoError(t, err)
	require.Len(t, entries, len(keys))

	r, err := NewReader(dataPath)
	require.NoError(t, err)
	defer r.Close()

	for i, entry := range entries {
		require.NoError(t, r.SeekTo(entry.Offset))
		it := r.Iterator()
		require.True(t, it.Next())
		assert.Equal(t, keys[i], it.Key().Text)
		assert.Equal(t, "v-"+keys[i], it.Value().Text)
	}
}

func TestIteratorOffsetAcrossSequentialRecords(t *testing.T) {
	dir := setup(t)
	dataPath := filepath.Join(dir, "table.sst")

	w, err := NewWriter(dataPath)
	require.NoError(t, err)
	records := []struct{ k, v string }{
		{"a", "1"},
		{"bb", "2"},
		{"ccc", "3"},
	}
	for _, r := range records {
		require.NoError(t, w.Append(cbor.NewText(r.k), cbor.NewText(r.v)))
	}
	require.NoError(t, w.Close())

	entries, err := LoadIndex(DeriveIndexPath(dataPath))
	require.NoError(t, err)
	require.Len(t, entries, len(records))
	wantOffsets := make([]uint64, len(entries))
	for i, e := range entries {
		wantOffsets[i] = e.Offset
	}

	r, err := NewReader(dataPath)
	require.NoError(t, err)
	defer r.Close()

	it := r.Iterator()
	var gotOffsets []uint64
	var gotKeys []string
	for it.Next() {
		gotOffsets = append(gotOffsets, it.Offset())
		gotKeys = append(gotKeys, it.Key().Text)
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []string{"a", "bb", "ccc"}, gotKeys)
	assert.Equal(t, wantOffsets, gotOffsets)
}

func TestWriterIntoFilesTransfersOpenHandles(t *testing.T) {
	dir := setup(t)
	dataPath := filepath.Join(dir, "table.sst")

	w, err := NewWriter(dataPath)
	require.NoError(t, err)
	require.NoError(t, w.Append(cbor.NewText("a"), cbor.NewText("1")))

	gotDataPath, dataFile, gotIndexPath, indexFile, err := w.IntoFiles()
	require.NoError(t, err)
	defer dataFile.Close()
	defer indexFile.Close()

	assert.Equal(t, dataPath, gotDataPath)
	assert.Equal(t, DeriveIndexPath(dataPath), gotIndexPath)

	fi, err := dataFile.Stat()
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(0))

	// the writer is released: using it again must fail, not silently reopen.
	require.Error(t, w.Append(cbor.NewText("b"), cbor.NewText("2")))
}

func TestLoadIndexOnEmptyFileYieldsEmptySlice(t *testing.T) {
	dir := setup(t)
	path := filepath.Join(dir, "empty.index")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	entries, err := LoadIndex(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTableAppendThenRead(t *testing.T) {
	dir := setup(t)
	dataPath := filepath.Join(dir, "table.sst")

	tbl := NewTable(dataPath)
	require.NoError(t, tbl.OpenForAppend())
	require.NoError(t, tbl.Append(cbor.NewText("a"), cbor.NewText("1")))
	require.NoError(t, tbl.Append(cbor.NewText("b"), cbor.NewText("2")))
	require.NoError(t, tbl.Close())

	tbl2 := NewTable(dataPath)
	require.NoError(t, tbl2.OpenForRead())
	defer tbl2.Close()

	require.Len(t, tbl2.Index(), 2)

	it, err := tbl2.Iterator()
	require.NoError(t, err)
	var got []string
	for it.Next() {
		got = append(got, it.Key().Text+"="+it.Value().Text)
	}
	assert.Equal(t, []string{"a=1", "b=2"}, got)
}
