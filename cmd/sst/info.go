package main

import (
	"fmt"
	"os"

	"github.com/mikhailwahib/sstable"
)

type infoCmd struct {
	Paths []string `arg:"" name:"path" help:"Table data file(s) to report on."`
}

func (c *infoCmd) Run() error {
	for _, path := range c.Paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			warnMissing(path)
			continue
		}
		r, err := sstable.Info(path)
		if err != nil {
			return err
		}
		out, err := r.Render()
		if err != nil {
			return err
		}
		fmt.Print(out)
	}
	return nil
}
