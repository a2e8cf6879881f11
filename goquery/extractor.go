// Package goquery implements content extraction and framework detection
// for documentation pages using goquery.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docpull"
)

// Ensure Extractor implements docpull.Extractor at compile time.
var _ docpull.Extractor = (*Extractor)(nil)

// DefaultTitle is used when a page has neither an h1 nor a <title>.
const DefaultTitle = "Untitled"

// MaxDescriptionLength caps descriptions derived from the first paragraph.
const MaxDescriptionLength = 160

// Strategy is a named CSS selector that may locate the main content region.
type Strategy struct {
	Name     string
	Selector string
}

// DefaultStrategies are tried in order; the first selector whose first match
// has non-blank text wins. Add new site layouts here rather than in code.
var DefaultStrategies = []Strategy{
	{Name: "article", Selector: "article"},
	{Name: "markdown-body", Selector: ".markdown-body"},
	{Name: "docusaurus", Selector: ".theme-doc-markdown"},
	{Name: "mkdocs", Selector: ".md-content"},
	{Name: "sphinx", Selector: ".document"},
	{Name: "docs-content", Selector: ".docs-content"},
	{Name: "main-content", Selector: ".main-content"},
	{Name: "content", Selector: ".content"},
	{Name: "role-main", Selector: "[role='main']"},
	{Name: "main", Selector: "main"},
}

// BodyStrategy names the fallback used when no strategy matched.
const BodyStrategy = "body"

// DefaultRemoveTags are elements that never carry page content.
var DefaultRemoveTags = []string{
	"script", "style", "noscript", "nav", "footer", "aside",
}

// DefaultRemoveClasses are class-name substrings marking boilerplate.
// Structural elements (html, body, main, article) are exempt so a wrapper
// class like "has-sidebar" cannot wipe out the whole page.
var DefaultRemoveClasses = []string{
	"sidebar", "navbar", "navigation", "breadcrumb", "feedback", "footer", "table-of-contents",
}

// chromeSelector is stripped before falling back to the whole body.
const chromeSelector = "header, nav, footer, aside, [role='banner'], [role='navigation']"

// Extractor extracts the main content region, title and description from
// documentation pages.
type Extractor struct {
	strategies    []Strategy
	removeTags    []string
	removeClasses []string
	detector      docpull.FrameworkDetector
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithStrategies replaces the content strategies.
func WithStrategies(strategies []Strategy) Option {
	return func(e *Extractor) {
		e.strategies = strategies
	}
}

// WithDetector sets the detector used to label each page's framework.
// Without one, ExtractResult.Framework is left as FrameworkUnknown.
func WithDetector(d docpull.FrameworkDetector) Option {
	return func(e *Extractor) {
		e.detector = d
	}
}

// NewExtractor creates a new Extractor with the default strategies.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		strategies:    DefaultStrategies,
		removeTags:    DefaultRemoveTags,
		removeClasses: DefaultRemoveClasses,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(html string) (*docpull.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, docpull.Errorf(docpull.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docpull.Errorf(docpull.EINVALID, "failed to parse HTML: %v", err)
	}

	// Detection relies on sidebars and navs, so it sees the raw page.
	framework := docpull.FrameworkUnknown
	if e.detector != nil {
		framework = e.detector.Detect(html)
	}

	e.removeBoilerplate(doc)

	content, strategy := e.selectContent(doc)
	if content == nil {
		return nil, docpull.Errorf(docpull.ENOTFOUND, "no content region found")
	}

	contentHTML, err := content.Html()
	if err != nil {
		return nil, docpull.Errorf(docpull.EINTERNAL, "failed to render content: %v", err)
	}

	return &docpull.ExtractResult{
		Title:       extractTitle(doc),
		Description: extractDescription(doc),
		ContentHTML: strings.TrimSpace(contentHTML),
		Strategy:    strategy,
		Framework:   framework,
	}, nil
}

func (e *Extractor) removeBoilerplate(doc *goquery.Document) {
	doc.Find(strings.Join(e.removeTags, ", ")).Remove()

	for _, class := range e.removeClasses {
		sel := `[class*="` + class + `"]:not(html):not(body):not(main):not(article)`
		doc.Find(sel).Remove()
	}
}

// selectContent returns the first strategy match with visible text, falling
// back to the body with page chrome removed.
func (e *Extractor) selectContent(doc *goquery.Document) (*goquery.Selection, string) {
	for _, s := range e.strategies {
		sel := doc.Find(s.Selector).First()
		if sel.Length() == 0 {
			continue
		}
		if strings.TrimSpace(sel.Text()) != "" {
			return sel, s.Name
		}
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, ""
	}
	body.Find(chromeSelector).Remove()
	// The HTML parser always synthesizes a body, so an empty one means
	// there is nothing to extract.
	if strings.TrimSpace(body.Text()) == "" {
		return nil, ""
	}
	return body, BodyStrategy
}

func extractTitle(doc *goquery.Document) string {
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}

	title := doc.Find("title").First().Text()
	if i := strings.Index(title, "|"); i >= 0 {
		title = title[:i]
	}
	if title = strings.TrimSpace(title); title != "" {
		return title
	}

	return DefaultTitle
}

func extractDescription(doc *goquery.Document) string {
	for _, sel := range []string{`meta[name="description"]`, `meta[property="og:description"]`} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if content = strings.TrimSpace(content); content != "" {
				return content
			}
		}
	}

	p := strings.TrimSpace(doc.Find("p").First().Text())
	return truncate(p, MaxDescriptionLength)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
