// Command sst is a thin front end over the sstable library: append,
// dump, index, keys, values, get, merge, sort, and info.
package main

import (
	"log"

	"github.com/alecthomas/kong"
)

// CLI is the full command surface. Exact shape is an external,
// out-of-scope concern: subcommands are kept deliberately small wrappers
// around the library.
type CLI struct {
	Append appendCmd `cmd:"" help:"Append one (key, value) record to each table."`
	Dump   dumpCmd   `cmd:"" help:"Stream all records as (offset) key: value."`
	Index  indexCmd  `cmd:"" help:"Stream all index entries as key: offset."`
	Keys   keysCmd   `cmd:"" help:"Stream only keys."`
	Values valuesCmd `cmd:"" help:"Stream only values."`
	Get    getCmd    `cmd:"" help:"Look up a key across one or more tables."`
	Merge  mergeCmd  `cmd:"" help:"K-way merge tables into a new table or stdout."`
	Sort   sortCmd   `cmd:"" help:"Canonically sort a single table (in place unless --out is given)."`
	Info   infoCmd   `cmd:"" help:"Print a per-table info report."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("sst"),
		kong.Description("Produce, read, and merge CBOR-encoded SSTables."),
	)

	log.SetFlags(0)
	if err := ctx.Run(); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func warnMissing(path string) {
	log.Printf("sst: %s: no such file, skipping", path)
}
