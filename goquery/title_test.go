package goquery_test

import (
	"testing"

	"docref/goquery"

	"github.com/stretchr/testify/assert"
)

func TestTitleExtractor_Title(t *testing.T) {
	t.Parallel()

	t.Run("prefers the title element", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewTitleExtractor()

		html := `<html><head><title>Page Title</title></head><body><h1>Heading</h1></body></html>`

		assert.Equal(t, "Page Title", extractor.Title(html))
	})

	t.Run("falls back to og:title", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewTitleExtractor()

		html := `<html><head><meta property="og:title" content="OG Title"></head><body><h1>Heading</h1></body></html>`

		assert.Equal(t, "OG Title", extractor.Title(html))
	})

	t.Run("falls back to the first h1", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewTitleExtractor()

		html := `<html><body><h1>Heading</h1><h1>Second</h1></body></html>`

		assert.Equal(t, "Heading", extractor.Title(html))
	})

	t.Run("trims whitespace", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewTitleExtractor()

		html := "<html><head><title>\n  Spaced Out  \n</title></head></html>"

		assert.Equal(t, "Spaced Out", extractor.Title(html))
	})

	t.Run("returns empty string when no title exists", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewTitleExtractor()

		assert.Equal(t, "", extractor.Title("<html><body><p>Nothing</p></body></html>"))
	})
}
