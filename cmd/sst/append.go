package main

import (
	"fmt"

	"github.com/mikhailwahib/sstable"
)

type appendCmd struct {
	Paths []string `arg:"" name:"path" help:"Table data file(s) to append to."`
	Key   string   `arg:"" help:"Key to append."`
	Value string   `arg:"" help:"Value to append."`
	Kind  string   `help:"Scalar kind for both key and value: text, uint64, or hex." default:"text" enum:"text,uint64,hex"`
}

func (c *appendCmd) Run() error {
	k, err := parseScalar(c.Kind, c.Key)
	if err != nil {
		return fmt.Errorf("key: %w", err)
	}
	v, err := parseScalar(c.Kind, c.Value)
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}

	for _, path := range c.Paths {
		w, err := sstable.NewWriter(path)
		if err != nil {
			return err
		}
		if err := w.Append(k, v); err != nil {
			_ = w.Close()
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
	}
	return nil
}
