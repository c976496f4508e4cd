package docref

import "strings"

// TOCEntry represents a single entry in a table of contents.
type TOCEntry struct {
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
	Depth  int    `json:"depth"`
}

// BuildTOC flattens sections into an ordered table of contents.
// Sections must be in document order.
func BuildTOC(sections []*Section) []TOCEntry {
	if len(sections) == 0 {
		return nil
	}

	entries := make([]TOCEntry, 0, len(sections))
	for _, s := range sections {
		entries = append(entries, TOCEntry{
			Title:  s.Title,
			Anchor: s.Anchor,
			Depth:  s.Level,
		})
	}
	return entries
}

// FormatTOC renders a table of contents as a markdown list of anchor
// links, indented relative to the shallowest entry.
func FormatTOC(entries []TOCEntry) string {
	if len(entries) == 0 {
		return ""
	}

	minDepth := entries[0].Depth
	for _, e := range entries {
		if e.Depth < minDepth {
			minDepth = e.Depth
		}
	}

	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(strings.Repeat("  ", e.Depth-minDepth))
		sb.WriteString("- [")
		sb.WriteString(e.Title)
		sb.WriteString("](#")
		sb.WriteString(e.Anchor)
		sb.WriteString(")\n")
	}
	return sb.String()
}
