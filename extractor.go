package docpull

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the first h1, else the <title> up to the first pipe,
	// else "Untitled".
	Title string

	// Description comes from meta description tags or the first paragraph.
	Description string

	// ContentHTML is the main content region as HTML.
	// Boilerplate (nav, footer, sidebar, breadcrumbs) has been removed.
	ContentHTML string

	// Strategy names the selector strategy that located the content region.
	Strategy string

	// Framework is the documentation generator detected for the page, if any.
	Framework Framework
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Returns ENOTFOUND if neither a content region nor a body exists.
	Extract(html string) (*ExtractResult, error)
}

// Framework identifies a documentation site generator.
type Framework string

// Framework constants for known documentation generators.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkSphinx     Framework = "sphinx"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkVuePress   Framework = "vuepress"
	FrameworkGitBook    Framework = "gitbook"
	FrameworkNextra     Framework = "nextra"
)

// FrameworkDetector identifies documentation frameworks from HTML content.
type FrameworkDetector interface {
	Detect(html string) Framework
}
