package fs

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the metadata header of a written page.
type FrontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ParseFrontMatter splits a written document into its front-matter and
// Markdown body.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, body, nil
}
