package docpull

import "strings"

// Manifest declares which documentation pages to mirror and where to put them.
type Manifest struct {
	// BaseURL is prepended to page URLs that are not absolute.
	BaseURL string

	// Areas are processed in declaration order.
	Areas []Area
}

// Area is a named group of pages sharing an output directory.
type Area struct {
	Name      string
	OutputDir string
	Pages     []PageEntry
}

// PageEntry describes a single page to mirror.
type PageEntry struct {
	// URL is absolute or relative to Manifest.BaseURL.
	URL string

	// OutputFile is the destination filename inside the area's OutputDir.
	OutputFile string

	// Title overrides the extracted page title when non-empty.
	Title string
}

// ResolveURL returns the absolute URL for a page entry.
// Anything starting with "http" is taken as absolute; everything else is
// concatenated onto BaseURL as-is. Protocol-relative ("//host/x") and
// path-relative ("../x") forms are not special-cased.
func (m *Manifest) ResolveURL(raw string) string {
	if strings.HasPrefix(raw, "http") {
		return raw
	}
	return m.BaseURL + raw
}

// PageCount returns the total number of pages across all areas.
func (m *Manifest) PageCount() int {
	n := 0
	for _, area := range m.Areas {
		n += len(area.Pages)
	}
	return n
}

// Validate returns an error if the manifest cannot be processed.
// Duplicate output files and paths escaping the output root are not checked.
func (m *Manifest) Validate() error {
	for _, area := range m.Areas {
		if area.OutputDir == "" {
			return Errorf(EINVALID, "area %q: output directory required", area.Name)
		}
		for i, page := range area.Pages {
			if page.URL == "" {
				return Errorf(EINVALID, "area %q: page %d: url required", area.Name, i)
			}
			if page.OutputFile == "" {
				return Errorf(EINVALID, "area %q: page %d: output file required", area.Name, i)
			}
			if m.BaseURL == "" && !strings.HasPrefix(page.URL, "http") {
				return Errorf(EINVALID, "area %q: relative url %q requires a base url", area.Name, page.URL)
			}
		}
	}
	return nil
}
