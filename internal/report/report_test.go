package report

import (
	"path/filepath"
	"testing"

	"github.com/mikhailwahib/sstable/internal/cbor"
	"github.com/mikhailwahib/sstable/internal/sstable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, dir, name string, pairs [][2]string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	w, err := sstable.NewWriter(path)
	require.NoError(t, err)
	for _, p := range pairs {
		require.NoError(t, w.Append(cbor.NewText(p[0]), cbor.NewText(p[1])))
	}
	require.NoError(t, w.Close())
	return path
}

func TestBuildReportsSortedUniqueTable(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, "t.sst", [][2]string{{"a", "1"}, {"b", "2"}, {"c", "3"}})

	r, err := Build(path)
	require.NoError(t, err)

	assert.Equal(t, 3, r.EntryCount)
	assert.Equal(t, "a", r.MinKey)
	assert.Equal(t, "c", r.MaxKey)
	assert.True(t, r.NaturalSorted)
	assert.True(t, r.Unique)
	assert.False(t, r.BloomFilter)
	assert.False(t, r.BlockCompression)
}

func TestBuildDetectsUnsortedAndDuplicates(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, "t.sst", [][2]string{{"b", "1"}, {"a", "2"}, {"a", "3"}})

	r, err := Build(path)
	require.NoError(t, err)

	assert.False(t, r.NaturalSorted)
	assert.False(t, r.Unique)
}

func TestRenderProducesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, "t.sst", [][2]string{{"a", "1"}})

	r, err := Build(path)
	require.NoError(t, err)

	out, err := r.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "entry_count: 1")
	assert.Contains(t, out, "bloom_filter: false")
}
