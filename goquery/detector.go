package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docpull"
)

var _ docpull.FrameworkDetector = (*Detector)(nil)

// frameworkMarker lists selectors that only appear in pages produced by one
// documentation generator. Markers are checked in order, so more specific
// generators (VitePress) come before the ones they descend from (VuePress).
type frameworkMarker struct {
	framework docpull.Framework
	selectors []string
}

var frameworkMarkers = []frameworkMarker{
	{docpull.FrameworkDocusaurus, []string{"#__docusaurus_skipToContent_fallback", ".theme-doc-sidebar-container", ".theme-doc-markdown"}},
	{docpull.FrameworkMkDocs, []string{"[data-md-color-scheme]", "[data-md-component]", ".md-nav--primary"}},
	{docpull.FrameworkSphinx, []string{".toctree-wrapper", ".wy-nav-side", ".wy-menu-vertical", ".sphinxsidebar"}},
	{docpull.FrameworkVitePress, []string{"#VPContent", ".VPDoc", ".VPDocAsideOutline"}},
	{docpull.FrameworkVuePress, []string{".theme-default-content", ".sidebar-links", ".vuepress-navbar"}},
	{docpull.FrameworkGitBook, []string{"[data-testid='space.sidebar']", "[data-testid='page.desktopTableOfContents']"}},
	{docpull.FrameworkNextra, []string{".nextra-navbar", ".nextra-sidebar", ".nextra-toc"}},
}

// generatorNames maps substrings of <meta name="generator"> to frameworks.
// Order matters: "vitepress" must be tested before "vuepress".
var generatorNames = []struct {
	substr    string
	framework docpull.Framework
}{
	{"sphinx", docpull.FrameworkSphinx},
	{"gitbook", docpull.FrameworkGitBook},
	{"docusaurus", docpull.FrameworkDocusaurus},
	{"mkdocs", docpull.FrameworkMkDocs},
	{"vitepress", docpull.FrameworkVitePress},
	{"vuepress", docpull.FrameworkVuePress},
	{"nextra", docpull.FrameworkNextra},
}

// Detector identifies documentation frameworks from HTML content.
// The result is informational: it is logged alongside extraction results to
// help diagnose pages where the content region was picked badly.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified framework.
// Returns FrameworkUnknown if the framework cannot be determined.
func (d *Detector) Detect(html string) docpull.Framework {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return docpull.FrameworkUnknown
	}

	// Meta generator tags are the most reliable signal when present.
	if generator, ok := doc.Find("meta[name='generator']").Last().Attr("content"); ok {
		generator = strings.ToLower(generator)
		for _, g := range generatorNames {
			if strings.Contains(generator, g.substr) {
				return g.framework
			}
		}
	}

	for _, m := range frameworkMarkers {
		for _, sel := range m.selectors {
			if doc.Find(sel).Length() > 0 {
				return m.framework
			}
		}
	}

	return docpull.FrameworkUnknown
}
