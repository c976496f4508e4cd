package main

import (
	"encoding/json"
	"fmt"

	"docref"
)

// Run executes the toc command.
func (c *TocCmd) Run(deps *Dependencies) error {
	filter := docref.SectionFilter{}

	if c.Doc != "" {
		doc, err := deps.Documents.FindDocumentByPath(deps.Ctx, c.Doc)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s Use 'docref list' to see available documents.\n", docref.ErrorMessage(err))
			return err
		}
		filter.DocumentID = &doc.ID
	}

	sections, err := deps.Sections.FindSections(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	if len(sections) == 0 {
		fmt.Fprintln(deps.Stderr, "No sections found. Use 'docref import' to add documents.")
		return docref.Errorf(docref.ENOTFOUND, "no sections found")
	}

	entries := docref.BuildTOC(sections)

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	fmt.Fprint(deps.Stdout, docref.FormatTOC(entries))
	return nil
}
