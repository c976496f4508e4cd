// Package etree generates XML artifacts for exported sites.
package etree

import (
	"io"
	"strings"

	"docref"

	"github.com/beevik/etree"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// WriteSitemap writes a sitemap.xml for the exported pages.
// baseURL is the site root the pages will be served from; paths are the
// exported page paths relative to that root.
func WriteSitemap(w io.Writer, baseURL string, paths []string) error {
	if baseURL == "" {
		return docref.Errorf(docref.EINVALID, "base URL required")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNamespace)

	base := strings.TrimSuffix(baseURL, "/")
	for _, path := range paths {
		url := urlset.CreateElement("url")
		loc := url.CreateElement("loc")
		loc.SetText(base + "/" + strings.TrimPrefix(path, "/"))
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
