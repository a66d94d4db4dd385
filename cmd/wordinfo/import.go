package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/wordinfo/fs"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	result, err := deps.Importer.Import(deps.Ctx, fs.NewDirDataset(c.Dir))
	if err != nil {
		return deps.fail(err)
	}

	if deps.JSON {
		return deps.print(result, "")
	}

	fmt.Fprintf(deps.Stdout, "Imported %d partitions (%d entries)\n", len(result.Imported), result.Entries)
	if len(result.Skipped) > 0 {
		fmt.Fprintf(deps.Stdout, "Skipped %d unchanged: %s\n", len(result.Skipped), strings.Join(result.Skipped, " "))
	}
	if len(result.Removed) > 0 {
		fmt.Fprintf(deps.Stdout, "Removed %d missing: %s\n", len(result.Removed), strings.Join(result.Removed, " "))
	}
	return nil
}
