package mock

import "github.com/fwojciec/docpull"

var _ docpull.Converter = (*Converter)(nil)

// Converter is a mock implementation of docpull.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
