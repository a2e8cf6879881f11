package mock

import "github.com/fwojciec/docpull"

var _ docpull.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docpull.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docpull.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docpull.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ docpull.FrameworkDetector = (*FrameworkDetector)(nil)

// FrameworkDetector is a mock implementation of docpull.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn func(html string) docpull.Framework
}

func (d *FrameworkDetector) Detect(html string) docpull.Framework {
	return d.DetectFn(html)
}
