// Package http provides the docref browsing server.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"docref"
)

// Server serves the document store over HTTP for browsing.
// All endpoints are read-only.
type Server struct {
	Addr      string
	SiteTitle string

	Documents docref.DocumentService
	Sections  docref.SectionService
	Renderer  docref.Renderer
	Logger    *slog.Logger

	ln     net.Listener
	server *http.Server
}

// NewServer creates a new Server with defaults.
func NewServer() *Server {
	return &Server{
		Addr:      ":4117",
		SiteTitle: "docref",
		Logger:    slog.Default(),
	}
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /toc", s.handleTOC)
	mux.HandleFunc("GET /sections/{anchor}", s.handleSection)
	mux.HandleFunc("GET /docs/{path...}", s.handleDocument)
	return s.logRequests(mux)
}

// Open starts listening on Addr. It returns once the listener is bound.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln
	s.server = &http.Server{Handler: s.Handler()}

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("server error", "error", err)
		}
	}()

	return nil
}

// URL returns the base URL the server is listening on.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// handleIndex serves an HTML table of contents for the whole store.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	docs, err := s.Documents.FindDocuments(r.Context(), docref.DocumentFilter{
		SortBy: docref.SortByPosition,
	})
	if err != nil {
		s.error(w, r, err)
		return
	}

	type indexDoc struct {
		Title string
		Path  string
		TOC   []docref.TOCEntry
	}

	var page struct {
		SiteTitle string
		Docs      []indexDoc
	}
	page.SiteTitle = s.SiteTitle

	for _, doc := range docs {
		sections, err := s.Sections.FindSections(r.Context(), docref.SectionFilter{
			DocumentID: &doc.ID,
		})
		if err != nil {
			s.error(w, r, err)
			return
		}

		title := doc.Title
		if title == "" {
			title = doc.Path
		}
		page.Docs = append(page.Docs, indexDoc{
			Title: title,
			Path:  doc.Path,
			TOC:   docref.BuildTOC(sections),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, page); err != nil {
		s.Logger.Error("render index", "error", err)
	}
}

// handleTOC serves the store's table of contents as JSON: ordered
// (title, anchor, depth) tuples.
func (s *Server) handleTOC(w http.ResponseWriter, r *http.Request) {
	sections, err := s.Sections.FindSections(r.Context(), docref.SectionFilter{})
	if err != nil {
		s.error(w, r, err)
		return
	}

	entries := docref.BuildTOC(sections)
	if entries == nil {
		entries = []docref.TOCEntry{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		s.Logger.Error("encode toc", "error", err)
	}
}

// handleSection serves a single section's rendered body by anchor.
func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	anchor := r.PathValue("anchor")

	section, err := s.Sections.FindSectionByAnchor(r.Context(), anchor)
	if err != nil {
		s.error(w, r, err)
		return
	}

	heading := fmt.Sprintf("%s %s\n\n", headingMarker(section.Level), section.Title)
	rendered, err := s.Renderer.Render(heading + section.Body)
	if err != nil {
		s.error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, rendered)
}

// handleDocument serves a full rendered document by source path.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	path := r.PathValue("path")

	doc, err := s.Documents.FindDocumentByPath(r.Context(), path)
	if err != nil {
		s.error(w, r, err)
		return
	}

	rendered, err := s.Renderer.Render(doc.Content)
	if err != nil {
		s.error(w, r, err)
		return
	}

	title := doc.Title
	if title == "" {
		title = doc.Path
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = documentTemplate.Execute(w, struct {
		SiteTitle string
		Title     string
		Body      template.HTML
	}{
		SiteTitle: s.SiteTitle,
		Title:     title,
		Body:      template.HTML(rendered),
	})
	if err != nil {
		s.Logger.Error("render document", "error", err)
	}
}

// error writes an application error as a JSON response with the
// appropriate HTTP status code.
func (s *Server) error(w http.ResponseWriter, r *http.Request, err error) {
	code := docref.ErrorCode(err)
	status := errorStatus(code)

	if status >= http.StatusInternalServerError {
		s.Logger.Error("http error", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"code":    code,
		"message": docref.ErrorMessage(err),
	})
}

// errorStatus maps application error codes to HTTP status codes.
func errorStatus(code string) int {
	switch code {
	case docref.EINVALID:
		return http.StatusBadRequest
	case docref.ENOTFOUND:
		return http.StatusNotFound
	case docref.ECONFLICT:
		return http.StatusConflict
	case docref.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case docref.ENOTIMPLEMENTED:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// logRequests wraps a handler with request logging.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.Logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(begin),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func headingMarker(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return "######"[:level]
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.SiteTitle}}</title></head>
<body>
<h1>{{.SiteTitle}}</h1>
{{range .Docs}}
<h2><a href="/docs/{{.Path}}">{{.Title}}</a></h2>
<ul>
{{$path := .Path}}
{{range .TOC}}
<li><a href="/docs/{{$path}}#{{.Anchor}}">{{.Title}}</a></li>
{{end}}
</ul>
{{end}}
</body>
</html>
`))

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}} | {{.SiteTitle}}</title></head>
<body>
<p><a href="/">{{.SiteTitle}}</a></p>
{{.Body}}
</body>
</html>
`))
