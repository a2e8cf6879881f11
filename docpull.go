// Package docpull mirrors pages of an external documentation site into
// Markdown content files for a static-site generator. It fetches each page
// listed in a manifest, extracts the main content region, converts it to
// Markdown and writes it with a front-matter header.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, yaml/).
package docpull
