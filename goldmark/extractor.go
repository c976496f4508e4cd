// Package goldmark provides markdown parsing and rendering for docref
// using the goldmark CommonMark parser.
package goldmark

import (
	"strings"

	"docref"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Ensure Extractor implements docref.SectionExtractor at compile time.
var _ docref.SectionExtractor = (*Extractor)(nil)

// Extractor extracts section structure from markdown by walking the
// goldmark AST. Headings inside fenced code blocks are never matched
// because they are not headings in the AST.
type Extractor struct {
	md goldmark.Markdown
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// ExtractSections returns the document's sections in document order.
// Anchors are generated from titles and de-duplicated with numeric
// suffixes. Heading paths reflect the enclosing heading hierarchy.
func (e *Extractor) ExtractSections(markdown string) ([]docref.Section, error) {
	if markdown == "" {
		return nil, nil
	}

	src := []byte(markdown)
	root := e.md.Parser().Parse(text.NewReader(src))
	lines := lineIndex(src)

	var sections []docref.Section
	anchors := docref.NewAnchorSet()

	// Stack of open headings, shallowest first, for heading paths.
	type frame struct {
		level int
		title string
	}
	var stack []frame

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		title := strings.TrimSpace(nodeText(heading, src))

		for len(stack) > 0 && stack[len(stack)-1].level >= heading.Level {
			stack = stack[:len(stack)-1]
		}
		pathParts := make([]string, 0, len(stack)+1)
		for _, f := range stack {
			pathParts = append(pathParts, f.title)
		}
		pathParts = append(pathParts, title)
		stack = append(stack, frame{level: heading.Level, title: title})

		sections = append(sections, docref.Section{
			Level:       heading.Level,
			Title:       title,
			Anchor:      anchors.Anchor(title),
			HeadingPath: strings.Join(pathParts, " > "),
			StartLine:   lines.lineOf(headingOffset(heading, src)),
		})

		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}

	fillBodies(sections, src, lines)

	return sections, nil
}

// ExtractCodeExamples returns the document's fenced code blocks in
// document order.
func (e *Extractor) ExtractCodeExamples(markdown string) ([]docref.CodeExample, error) {
	if markdown == "" {
		return nil, nil
	}

	src := []byte(markdown)
	root := e.md.Parser().Parse(text.NewReader(src))
	lines := lineIndex(src)

	var examples []docref.CodeExample

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		block, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		var code strings.Builder
		segments := block.Lines()
		for i := 0; i < segments.Len(); i++ {
			seg := segments.At(i)
			code.Write(seg.Value(src))
		}

		line := 0
		if segments.Len() > 0 {
			// The opening fence is the line before the first content line.
			line = lines.lineOf(segments.At(0).Start) - 1
		}

		examples = append(examples, docref.CodeExample{
			Language: string(block.Language(src)),
			Code:     code.String(),
			Line:     line,
		})

		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}

	return examples, nil
}

// fillBodies computes each section's line span and body text. A section's
// own body runs from the line after its heading to the line before the
// next heading of any level.
func fillBodies(sections []docref.Section, src []byte, lines lineOffsets) {
	if len(sections) == 0 {
		return
	}

	total := lines.count()
	srcLines := strings.Split(string(src), "\n")

	for i := range sections {
		end := total
		if i+1 < len(sections) {
			end = sections[i+1].StartLine - 1
		}
		sections[i].EndLine = end

		if sections[i].StartLine < end {
			body := srcLines[sections[i].StartLine:end]
			sections[i].Body = strings.Trim(strings.Join(body, "\n"), "\n")
		}
	}
}

// nodeText collects the plain text content of a node.
func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

// headingOffset returns the byte offset of the heading's text, falling
// back to 0 for headings without line segments.
func headingOffset(h *ast.Heading, src []byte) int {
	if h.Lines().Len() == 0 {
		return 0
	}
	return h.Lines().At(0).Start
}

// lineOffsets maps byte offsets to 1-based line numbers.
type lineOffsets []int

// lineIndex builds a lineOffsets for src: the byte offset at which each
// line starts.
func lineIndex(src []byte) lineOffsets {
	offsets := lineOffsets{0}
	for i, b := range src {
		if b == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// lineOf returns the 1-based line number containing the byte offset.
func (l lineOffsets) lineOf(offset int) int {
	lo, hi := 0, len(l)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if l[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1
}

// count returns the number of lines.
func (l lineOffsets) count() int {
	return len(l)
}
