package sstable_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/mikhailwahib/sstable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadHelloWorld(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.sst")

	w, err := sstable.NewWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Append(sstable.NewText("hello"), sstable.NewText("world")))
	require.NoError(t, w.Close())

	r, err := sstable.NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	it := r.Iterator()
	require.True(t, it.Next())
	assert.Equal(t, "hello", it.Key().Text)
	assert.Equal(t, "world", it.Value().Text)
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

func TestGetReturnsAllDuplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.sst")

	w, err := sstable.NewWriter(path)
	require.NoError(t, err)
	for _, kv := range [][2]string{{"a", "1"}, {"a", "2"}, {"b", "3"}} {
		require.NoError(t, w.Append(sstable.NewText(kv[0]), sstable.NewText(kv[1])))
	}
	require.NoError(t, w.Close())

	matches, err := sstable.Get([]string{path}, sstable.NewText("a"), 0, nil)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "1", matches[0].Value.Text)
	assert.Equal(t, "2", matches[1].Value.Text)
}

func TestMergeThreeTablesThenRead(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 0, 3)
	for i, pairs := range [][][2]string{
		{{"a", "1"}, {"b", "2"}},
		{{"c", "3"}, {"d", "4"}},
		{{"e", "5"}, {"f", "6"}},
	} {
		p := filepath.Join(dir, string(rune('1'+i))+".sst")
		w, err := sstable.NewWriter(p)
		require.NoError(t, err)
		for _, kv := range pairs {
			require.NoError(t, w.Append(sstable.NewText(kv[0]), sstable.NewText(kv[1])))
		}
		require.NoError(t, w.Close())
		paths = append(paths, p)
	}

	outPath := filepath.Join(dir, "out.sst")
	w, err := sstable.NewWriter(outPath)
	require.NoError(t, err)
	sink := sstable.NewSSTableSink(w)

	inputs := make([]sstable.MergeInput, len(paths))
	for i, p := range paths {
		inputs[i] = sstable.MergeInput{DataPath: p}
	}
	require.NoError(t, sstable.Merge(inputs, sink, sstable.Natural))
	require.NoError(t, w.Close())

	r, err := sstable.NewReader(outPath)
	require.NoError(t, err)
	defer r.Close()

	var got []string
	it := r.Iterator()
	for it.Next() {
		got = append(got, it.Key().Text+":"+it.Value().Text)
	}
	assert.Equal(t, []string{"a:1", "b:2", "c:3", "d:4", "e:5", "f:6"}, got)
}

func TestMergeToTextSinkWritesTabSeparated(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "t.sst")
	w, err := sstable.NewWriter(p)
	require.NoError(t, err)
	require.NoError(t, w.Append(sstable.NewText("k"), sstable.NewText("v")))
	require.NoError(t, w.Close())

	var buf bytes.Buffer
	sink := sstable.NewTextSink(&buf)
	require.NoError(t, sstable.Merge([]sstable.MergeInput{{DataPath: p}}, sink, sstable.Natural))
	require.NoError(t, sink.Flush())
	assert.Equal(t, "k\tv\n", buf.String())
}

func TestInfoReportsEntryCountAndSortedness(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "t.sst")
	w, err := sstable.NewWriter(p)
	require.NoError(t, err)
	require.NoError(t, w.Append(sstable.NewText("a"), sstable.NewText("1")))
	require.NoError(t, w.Append(sstable.NewText("b"), sstable.NewText("2")))
	require.NoError(t, w.Close())

	r, err := sstable.Info(p)
	require.NoError(t, err)
	assert.Equal(t, 2, r.EntryCount)
	assert.True(t, r.NaturalSorted)
	assert.True(t, r.Unique)
}
