package main

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"docref"
	"docref/etree"
	"docref/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	out := c.Out
	if out == "" {
		out = deps.Config.OutputDir
	}
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = deps.Config.BaseURL
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, docref.DocumentFilter{
		SortBy: docref.SortByPosition,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}
	if len(docs) == 0 {
		fmt.Fprintln(deps.Stderr, "No documents found. Use 'docref import' to add some.")
		return docref.Errorf(docref.ENOTFOUND, "no documents found")
	}

	store := fs.NewExportStore(filepath.Dir(out), filepath.Base(out))
	committed := false
	defer func() {
		if !committed {
			_ = store.Abort()
		}
	}()

	type indexDoc struct {
		Title string
		Href  string
		TOC   []docref.TOCEntry
	}
	index := struct {
		SiteTitle string
		Docs      []indexDoc
	}{SiteTitle: deps.Config.SiteTitle}

	var pagePaths []string

	for _, doc := range docs {
		rendered, err := deps.Renderer.Render(doc.Content)
		if err != nil {
			return err
		}

		title := doc.Title
		if title == "" {
			title = doc.Path
		}

		pagePath := htmlPath(doc.Path)

		var buf bytes.Buffer
		err = exportPageTemplate.Execute(&buf, struct {
			SiteTitle string
			Title     string
			Home      string
			Body      template.HTML
		}{
			SiteTitle: index.SiteTitle,
			Title:     title,
			Home:      homeHref(pagePath),
			Body:      template.HTML(rendered),
		})
		if err != nil {
			return err
		}

		if err := store.Save(deps.Ctx, pagePath, buf.Bytes()); err != nil {
			return err
		}
		pagePaths = append(pagePaths, pagePath)

		sections, err := deps.Sections.FindSections(deps.Ctx, docref.SectionFilter{
			DocumentID: &doc.ID,
		})
		if err != nil {
			return err
		}
		index.Docs = append(index.Docs, indexDoc{
			Title: title,
			Href:  pagePath,
			TOC:   docref.BuildTOC(sections),
		})
	}

	var buf bytes.Buffer
	if err := exportIndexTemplate.Execute(&buf, index); err != nil {
		return err
	}
	if err := store.Save(deps.Ctx, "index.html", buf.Bytes()); err != nil {
		return err
	}

	if baseURL != "" {
		var sm bytes.Buffer
		paths := append([]string{"index.html"}, pagePaths...)
		if err := etree.WriteSitemap(&sm, baseURL, paths); err != nil {
			return err
		}
		if err := store.Save(deps.Ctx, "sitemap.xml", sm.Bytes()); err != nil {
			return err
		}
	}

	if err := store.Commit(); err != nil {
		return err
	}
	committed = true

	fmt.Fprintf(deps.Stdout, "Exported %d document(s) to %s\n", len(docs), store.Dir())
	return nil
}

// htmlPath maps a source document path to its exported page path.
func htmlPath(docPath string) string {
	ext := filepath.Ext(docPath)
	return strings.TrimSuffix(docPath, ext) + ".html"
}

// homeHref returns the relative link from an exported page back to the
// site index, climbing one level per subdirectory in the page path.
func homeHref(pagePath string) string {
	return strings.Repeat("../", strings.Count(pagePath, "/")) + "index.html"
}

var exportPageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}} | {{.SiteTitle}}</title></head>
<body>
<p><a href="{{.Home}}">{{.SiteTitle}}</a></p>
{{.Body}}
</body>
</html>
`))

var exportIndexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.SiteTitle}}</title></head>
<body>
<h1>{{.SiteTitle}}</h1>
{{range .Docs}}
<h2><a href="{{.Href}}">{{.Title}}</a></h2>
<ul>
{{$href := .Href}}
{{range .TOC}}
<li><a href="{{$href}}#{{.Anchor}}">{{.Title}}</a></li>
{{end}}
</ul>
{{end}}
</body>
</html>
`))
