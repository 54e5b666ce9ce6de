package main

import (
	"fmt"
	"os"

	"github.com/mikhailwahib/sstable"
)

type mergeCmd struct {
	Paths []string `arg:"" name:"path" help:"Table data file(s) to merge, in tiebreak order."`
	Out   string   `help:"Output table data path. Omit to write a text stream to stdout."`
	Order string   `help:"Merge order: natural or canonical." default:"natural" enum:"natural,canonical"`
}

func (c *mergeCmd) Run() error {
	order := sstable.Natural
	if c.Order == "canonical" {
		order = sstable.Canonical
	}

	inputs := make([]sstable.MergeInput, len(c.Paths))
	for i, p := range c.Paths {
		inputs[i] = sstable.MergeInput{DataPath: p}
	}

	if c.Out == "" {
		sink := sstable.NewTextSink(os.Stdout)
		if err := sstable.Merge(inputs, sink, order); err != nil {
			return err
		}
		return sink.Flush()
	}

	w, err := sstable.NewWriter(c.Out)
	if err != nil {
		return err
	}
	sink := sstable.NewSSTableSink(w)
	if err := sstable.Merge(inputs, sink, order); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	fmt.Printf("merged %d table(s) into %s\n", len(inputs), c.Out)
	return nil
}
