package docpull

// MinContentLength is the shortest Markdown body accepted as a real page.
// Anything shorter usually means extraction picked the wrong region.
const MinContentLength = 100

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into normalized Markdown.
	// Returns EINVALID for empty input or output shorter than MinContentLength.
	Convert(html string) (string, error)
}
