// Package fs writes converted pages as Markdown content files.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/docpull"
)

// MaxDescriptionLength caps the description written to front-matter.
const MaxDescriptionLength = 200

var (
	lineBreakReplacer = strings.NewReplacer(
		"\r\n", " ",
		"\n", " ",
		"\u2028", " ",
		"\u2029", " ",
	)
	quoteReplacer = strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
	)
)

// FormatPage formats a page with a YAML front-matter header holding the
// title and description as double-quoted scalars.
func FormatPage(page *docpull.Page) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString(`title: "`)
	b.WriteString(quote(page.Title))
	b.WriteString("\"\n")
	b.WriteString(`description: "`)
	b.WriteString(quote(truncate(page.Description, MaxDescriptionLength)))
	b.WriteString("\"\n")
	b.WriteString("---\n\n")
	b.WriteString(page.Content)
	b.WriteString("\n")
	return b.String()
}

func quote(s string) string {
	return quoteReplacer.Replace(clean(s))
}

// clean flattens s to a single line and drops control characters other
// than tab, which YAML does not allow in a scalar.
func clean(s string) string {
	return strings.Map(func(r rune) rune {
		if r != '\t' && unicode.IsControl(r) {
			return -1
		}
		return r
	}, lineBreakReplacer.Replace(s))
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// Ensure Writer implements docpull.PageWriter at compile time.
var _ docpull.PageWriter = (*Writer)(nil)

// Writer writes pages as markdown files below a root directory.
type Writer struct {
	root string
}

// NewWriter creates a new Writer that writes relative to root.
func NewWriter(root string) *Writer {
	return &Writer{root: root}
}

// WritePage writes a page to <root>/<page.Path>, creating parent directories
// and overwriting any existing file.
func (w *Writer) WritePage(ctx context.Context, page *docpull.Page) (string, error) {
	if page.Path == "" {
		return "", docpull.Errorf(docpull.EINVALID, "page path required")
	}

	fullPath := filepath.Join(w.root, filepath.FromSlash(page.Path))

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	doc := []byte(FormatPage(page))
	if err := checkFrontMatter(doc, page); err != nil {
		return "", err
	}

	if err := os.WriteFile(fullPath, doc, 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}

// checkFrontMatter reads the rendered document back and confirms the
// header decodes to the page's title and description.
func checkFrontMatter(doc []byte, page *docpull.Page) error {
	meta, _, err := ParseFrontMatter(doc)
	if err != nil {
		return docpull.Errorf(docpull.EINTERNAL, "front-matter for %s does not parse: %v", page.Path, err)
	}
	if meta.Title != clean(page.Title) {
		return docpull.Errorf(docpull.EINTERNAL, "front-matter title for %s decodes to %q", page.Path, meta.Title)
	}
	if want := clean(truncate(page.Description, MaxDescriptionLength)); meta.Description != want {
		return docpull.Errorf(docpull.EINTERNAL, "front-matter description for %s decodes to %q", page.Path, meta.Description)
	}
	return nil
}
