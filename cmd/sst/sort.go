package main

import (
	"fmt"
	"os"

	"github.com/mikhailwahib/sstable"
)

// sortCmd canonically sorts a single table. Per this system's resolution
// of the shared Merge/Sort implementation question: rather than an
// in-memory sort, it feeds the table's own canonically-sorted index back
// through the single-input merge path, which is equivalent and reuses the
// same k-way engine with k=1.
type sortCmd struct {
	Path string `arg:"" help:"Table data file to canonically sort."`
	Out  string `help:"Output data path. Omit to sort in place."`
}

func (c *sortCmd) Run() error {
	out := c.Out
	inPlace := out == ""
	if inPlace {
		out = c.Path + ".sorting"
	}

	w, err := sstable.NewWriter(out)
	if err != nil {
		return err
	}
	sink := sstable.NewSSTableSink(w)

	if mergeErr := sstable.Merge([]sstable.MergeInput{{DataPath: c.Path}}, sink, sstable.Canonical); mergeErr != nil {
		_ = w.Close()
		return mergeErr
	}

	dataPath, dataFile, indexPath, indexFile, err := w.IntoFiles()
	if err != nil {
		return err
	}
	defer dataFile.Close()
	defer indexFile.Close()

	if !inPlace {
		fmt.Printf("sorted %s into %s\n", c.Path, dataPath)
		return nil
	}

	if err := os.Rename(dataPath, c.Path); err != nil {
		return fmt.Errorf("sort: replace %s: %w", c.Path, err)
	}
	if err := os.Rename(indexPath, sstable.DeriveIndexPath(c.Path)); err != nil {
		return fmt.Errorf("sort: replace %s: %w", sstable.DeriveIndexPath(c.Path), err)
	}
	fmt.Printf("sorted %s in place\n", c.Path)
	return nil
}
