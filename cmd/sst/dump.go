package main

import (
	"fmt"
	"os"

	"github.com/mikhailwahib/sstable"
)

type dumpCmd struct {
	Paths []string `arg:"" name:"path" help:"Table data file(s) to dump."`
}

func (c *dumpCmd) Run() error {
	for _, path := range c.Paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			warnMissing(path)
			continue
		}
		if err := dumpOne(path); err != nil {
			return err
		}
	}
	return nil
}

func dumpOne(path string) error {
	r, err := sstable.NewReader(path)
	if err != nil {
		return err
	}
	defer r.Close()

	it := r.Iterator()
	for it.Next() {
		fmt.Printf("(%d) %s: %s\n", it.Offset(), formatScalar(it.Key()), formatScalar(it.Value()))
	}
	return it.Err()
}

type keysCmd struct {
	Paths []string `arg:"" name:"path" help:"Table data file(s) to read."`
}

func (c *keysCmd) Run() error {
	for _, path := range c.Paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			warnMissing(path)
			continue
		}
		r, err := sstable.NewReader(path)
		if err != nil {
			return err
		}
		it := r.Iterator()
		for it.Next() {
			fmt.Println(formatScalar(it.Key()))
		}
		err = it.Err()
		_ = r.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

type valuesCmd struct {
	Paths []string `arg:"" name:"path" help:"Table data file(s) to read."`
}

func (c *valuesCmd) Run() error {
	for _, path := range c.Paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			warnMissing(path)
			continue
		}
		r, err := sstable.NewReader(path)
		if err != nil {
			return err
		}
		it := r.Iterator()
		for it.Next() {
			fmt.Println(formatScalar(it.Value()))
		}
		err = it.Err()
		_ = r.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
