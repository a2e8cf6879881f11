// Package htmltomarkdown converts extracted HTML fragments to Markdown using
// html-to-markdown, with custom rendering for code blocks and tables.
package htmltomarkdown

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/docpull"
)

// Ensure Converter implements docpull.Converter at compile time.
var _ docpull.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv      *converter.Converter
	minLength int
}

// Option configures a Converter.
type Option func(*Converter)

// WithMinLength sets the shortest accepted Markdown output in characters.
// Defaults to docpull.MinContentLength.
func WithMinLength(n int) Option {
	return func(c *Converter) {
		c.minLength = n
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
				commonmark.WithCodeBlockFence("```"),
			),
		),
	)

	// Registered early so they win over the commonmark defaults.
	conv.Register.RendererFor("pre", converter.TagTypeBlock, renderCodeBlock, converter.PriorityEarly)
	conv.Register.RendererFor("table", converter.TagTypeBlock, renderTable, converter.PriorityEarly)
	for _, tag := range []string{"script", "style", "noscript"} {
		conv.Register.RendererFor(tag, converter.TagTypeRemove, renderNothing, converter.PriorityEarly)
	}

	c := &Converter{
		conv:      conv,
		minLength: docpull.MinContentLength,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms HTML content into normalized Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docpull.Errorf(docpull.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("convert html: %w", err)
	}

	md := Normalize(result)
	if n := utf8.RuneCountInString(md); n < c.minLength {
		return "", docpull.Errorf(docpull.EINVALID, "content too short (%d characters)", n)
	}

	return md, nil
}
