// Package goquery extracts document metadata from HTML using CSS selectors.
package goquery

import (
	"strings"

	"docref"

	"github.com/PuerkitoBio/goquery"
)

// Ensure TitleExtractor implements docref.TitleExtractor at compile time.
var _ docref.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor extracts a document title from HTML.
type TitleExtractor struct{}

// NewTitleExtractor creates a new TitleExtractor.
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{}
}

// Title returns the document title. The <title> element wins; og:title
// and the first <h1> are fallbacks. Returns an empty string when the
// HTML has no usable title.
func (e *TitleExtractor) Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}

	if og, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if title := strings.TrimSpace(og); title != "" {
			return title
		}
	}

	return strings.TrimSpace(doc.Find("h1").First().Text())
}
