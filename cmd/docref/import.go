package main

import "fmt"

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	report, err := deps.Importer.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported: %d created, %d updated, %d unchanged",
		report.Created, report.Updated, report.Unchanged)
	if c.Prune {
		fmt.Fprintf(deps.Stdout, ", %d pruned", report.Pruned)
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}
