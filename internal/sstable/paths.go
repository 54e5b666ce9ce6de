package sstable

import (
	"path/filepath"
	"strings"
)

// DeriveIndexPath computes the conventional sidecar index path for a data
// path: the extension (if any) is prefixed with "index.", e.g. "foo.sst"
// becomes "foo.index.sst"; a path with no extension gets ".index"
// appended, e.g. "foo" becomes "foo.index". This is a convention only —
// Options.IndexPath always overrides it.
func DeriveIndexPath(dataPath string) string {
	ext := filepath.Ext(dataPath)
	if ext == "" {
		return dataPath + ".index"
	}
	stem := strings.TrimSuffix(dataPath, ext)
	return stem + ".index" + ext
}
