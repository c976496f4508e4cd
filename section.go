package docref

import (
	"context"
	"strconv"
	"strings"
	"unicode"
)

// Section represents a heading-delimited region of a markdown document.
// Sections form a strict tree via heading levels; the tree is flattened
// into document order with Position.
type Section struct {
	ID         string `json:"id"`
	DocumentID string `json:"documentId"`
	Level      int    `json:"level"`
	Title      string `json:"title"`
	Anchor     string `json:"anchor"`

	// HeadingPath is the section's location in the heading tree,
	// e.g. "Key Concepts > Hooks".
	HeadingPath string `json:"headingPath"`

	// Position is the section's index in document order.
	Position int `json:"position"`

	// StartLine and EndLine delimit the section's own body (heading line
	// through the line before the next heading), 1-based.
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`

	// Body is the section's own markdown content, excluding subsections.
	Body string `json:"body"`
}

// Validate returns an error if the section contains invalid fields.
func (s *Section) Validate() error {
	if s.DocumentID == "" {
		return Errorf(EINVALID, "section document ID required")
	}
	if s.Level < 1 || s.Level > 6 {
		return Errorf(EINVALID, "section level must be between 1 and 6")
	}
	if s.Anchor == "" {
		return Errorf(EINVALID, "section anchor required")
	}
	return nil
}

// CodeExample represents a fenced code block embedded in a document.
// It is inert text with a language hint for syntax highlighting.
type CodeExample struct {
	Language string `json:"language"`
	Code     string `json:"code"`
	Line     int    `json:"line"`
}

// SectionExtractor parses markdown into its section structure.
type SectionExtractor interface {
	// ExtractSections returns the document's sections in document order,
	// with anchors generated and de-duplicated.
	ExtractSections(markdown string) ([]Section, error)

	// ExtractCodeExamples returns the document's fenced code blocks in
	// document order.
	ExtractCodeExamples(markdown string) ([]CodeExample, error)
}

// SectionService represents a service for querying stored sections.
// The store is read-only at this interface; sections are written as part
// of document import.
type SectionService interface {
	// ReplaceSections atomically replaces all sections for a document.
	ReplaceSections(ctx context.Context, documentID string, sections []*Section) error

	// FindSectionByAnchor retrieves a section by its anchor. When the
	// anchor exists in more than one document, the first match in store
	// order (document position, then section position) wins.
	// Returns ENOTFOUND if no section has the anchor.
	FindSectionByAnchor(ctx context.Context, anchor string) (*Section, error)

	// FindSections retrieves sections matching the filter, in store order.
	FindSections(ctx context.Context, filter SectionFilter) ([]*Section, error)

	// DeleteSectionsByDocument removes all sections for a document.
	DeleteSectionsByDocument(ctx context.Context, documentID string) error
}

// SectionFilter represents a filter for FindSections.
type SectionFilter struct {
	DocumentID *string `json:"documentId"`
	Anchor     *string `json:"anchor"`
	Level      *int    `json:"level"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Slugify creates a URL-safe anchor from a heading title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func Slugify(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	result := sb.String()
	// Trim trailing hyphen
	return strings.TrimSuffix(result, "-")
}

// AnchorSet allocates unique anchors from heading titles, suffixing
// duplicates with -1, -2, and so on.
type AnchorSet struct {
	counts map[string]int
}

// NewAnchorSet returns an empty AnchorSet.
func NewAnchorSet() *AnchorSet {
	return &AnchorSet{counts: make(map[string]int)}
}

// Anchor returns a unique anchor for the given title.
func (a *AnchorSet) Anchor(title string) string {
	base := Slugify(title)
	if base == "" {
		base = "section"
	}

	count, exists := a.counts[base]
	if !exists {
		a.counts[base] = 1
		return base
	}
	a.counts[base]++
	return base + "-" + strconv.Itoa(count)
}
