package docref

import (
	"fmt"
	"regexp"
	"strings"
)

// IssueKind identifies a class of structural problem in a document.
type IssueKind string

// Issue kinds reported by CheckDocument.
const (
	IssueDeadLink       IssueKind = "dead_link"
	IssueSkippedHeading IssueKind = "skipped_heading"
)

// Issue represents a structural problem found in a document.
type Issue struct {
	Kind   IssueKind `json:"kind"`
	Line   int       `json:"line"`
	Detail string    `json:"detail"`
}

func (i Issue) String() string {
	return fmt.Sprintf("line %d: %s: %s", i.Line, i.Kind, i.Detail)
}

// InternalLink represents an in-document anchor link, e.g. "[Hooks](#hooks)".
type InternalLink struct {
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
	Line   int    `json:"line"`
}

var internalLinkRe = regexp.MustCompile(`\[([^\]]*)\]\(#([^)\s]+)\)`)

// ExtractInternalLinks returns all in-document anchor links in document
// order. Links inside fenced code blocks are ignored.
func ExtractInternalLinks(markdown string) []InternalLink {
	if markdown == "" {
		return nil
	}

	var links []InternalLink
	inFence := false

	for i, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		for _, match := range internalLinkRe.FindAllStringSubmatch(line, -1) {
			links = append(links, InternalLink{
				Text:   match[1],
				Anchor: match[2],
				Line:   i + 1,
			})
		}
	}

	return links
}

// CheckDocument validates a document's structure against its extracted
// sections. It reports internal links whose anchor matches no section
// (dead links) and headings that skip levels when nesting.
func CheckDocument(markdown string, sections []Section) []Issue {
	var issues []Issue

	anchors := make(map[string]bool, len(sections))
	for _, s := range sections {
		anchors[s.Anchor] = true
	}

	for _, link := range ExtractInternalLinks(markdown) {
		if !anchors[link.Anchor] {
			issues = append(issues, Issue{
				Kind:   IssueDeadLink,
				Line:   link.Line,
				Detail: fmt.Sprintf("link %q targets unknown anchor %q", link.Text, link.Anchor),
			})
		}
	}

	// A heading may nest at most one level deeper than the heading
	// before it; deeper jumps break the section tree.
	prevLevel := 0
	for _, s := range sections {
		if prevLevel > 0 && s.Level > prevLevel+1 {
			issues = append(issues, Issue{
				Kind: IssueSkippedHeading,
				Line: s.StartLine,
				Detail: fmt.Sprintf("heading %q skips from level %d to %d",
					s.Title, prevLevel, s.Level),
			})
		}
		prevLevel = s.Level
	}

	return issues
}
