package main

import (
	"fmt"

	"docref"
)

// Run executes the examples command.
func (c *ExamplesCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocumentByPath(deps.Ctx, c.Doc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s Use 'docref list' to see available documents.\n", docref.ErrorMessage(err))
		return err
	}

	examples, err := deps.Extractor.ExtractCodeExamples(doc.Content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	if len(examples) == 0 {
		fmt.Fprintf(deps.Stdout, "No code examples in %s.\n", doc.Path)
		return nil
	}

	for i, ex := range examples {
		lang := ex.Language
		if lang == "" {
			lang = "text"
		}
		fmt.Fprintf(deps.Stdout, "%d. [%s] line %d\n", i+1, lang, ex.Line)
		fmt.Fprintln(deps.Stdout, ex.Code)
	}

	return nil
}
