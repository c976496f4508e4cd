package main

import (
	"fmt"
	"strings"

	"docref"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	section, err := deps.Sections.FindSectionByAnchor(deps.Ctx, c.Anchor)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s Use 'docref toc' to see available sections.\n", docref.ErrorMessage(err))
		return err
	}

	markdown := strings.Repeat("#", section.Level) + " " + section.Title + "\n\n" + section.Body

	if c.Raw {
		fmt.Fprintln(deps.Stdout, markdown)
		return nil
	}

	rendered, err := deps.Term.Render(markdown)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stderr, "%s\n", section.HeadingPath)
	fmt.Fprint(deps.Stdout, rendered)
	return nil
}
