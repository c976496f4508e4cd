package main

import (
	"fmt"

	"docref"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, docref.DocumentFilter{
		SortBy: docref.SortByPosition,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'docref import' to add some.")
		return nil
	}

	if c.Full {
		fmt.Fprintln(deps.Stdout, docref.FormatDocuments(docs))
		return nil
	}

	for _, doc := range docs {
		title := doc.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", doc.ID, doc.Path, title)
	}

	return nil
}
