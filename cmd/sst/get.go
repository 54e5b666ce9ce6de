package main

import (
	"fmt"

	"github.com/mikhailwahib/sstable"
)

type getCmd struct {
	Paths []string `arg:"" name:"path" help:"Table data file(s) to search, in order."`
	Key   string   `help:"Key to look up." required:""`
	Kind  string   `help:"Scalar kind of the key: text, uint64, or hex." default:"text" enum:"text,uint64,hex"`
	N     int      `help:"Maximum matches per path (0 = unlimited)." default:"0"`
}

func (c *getCmd) Run() error {
	key, err := parseScalar(c.Kind, c.Key)
	if err != nil {
		return fmt.Errorf("key: %w", err)
	}

	matches, err := sstable.Get(c.Paths, key, c.N, warnMissing)
	if err != nil {
		return err
	}
	for _, m := range matches {
		fmt.Println(formatScalar(m.Value))
	}
	return nil
}
