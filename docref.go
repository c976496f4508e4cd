// Package docref provides a local, CLI-based store for Markdown reference
// documentation. It imports a directory of Markdown documents into a local
// database, extracts their section structure (headings, anchors, code
// examples), and answers table-of-contents and section-by-anchor queries.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goldmark/, glamour/).
package docref
