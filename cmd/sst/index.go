package main

import (
	"fmt"
	"os"

	"github.com/mikhailwahib/sstable"
)

type indexCmd struct {
	Paths []string `arg:"" name:"path" help:"Table data file(s) whose index to read."`
}

func (c *indexCmd) Run() error {
	for _, path := range c.Paths {
		idxPath := sstable.DeriveIndexPath(path)
		if _, err := os.Stat(idxPath); os.IsNotExist(err) {
			warnMissing(idxPath)
			continue
		}
		entries, err := sstable.LoadIndex(idxPath)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s: %d\n", formatScalar(e.Key), e.Offset)
		}
	}
	return nil
}
