package main

import (
	"fmt"

	"docref"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	filter := docref.DocumentFilter{SortBy: docref.SortByPosition}
	if c.Doc != "" {
		filter.Path = &c.Doc
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		if c.Doc != "" {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'docref list' to see available documents.\n", c.Doc)
			return docref.Errorf(docref.ENOTFOUND, "document %q not found", c.Doc)
		}
		fmt.Fprintln(deps.Stderr, "No documents found. Use 'docref import' to add some.")
		return docref.Errorf(docref.ENOTFOUND, "no documents found")
	}

	total := 0
	for _, doc := range docs {
		sections, err := deps.Extractor.ExtractSections(doc.Content)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
			return err
		}

		for _, issue := range docref.CheckDocument(doc.Content, sections) {
			fmt.Fprintf(deps.Stdout, "%s: %s\n", doc.Path, issue)
			total++
		}
	}

	if total > 0 {
		return docref.Errorf(docref.EINVALID, "found %d issue(s)", total)
	}

	fmt.Fprintln(deps.Stdout, "No issues found.")
	return nil
}
