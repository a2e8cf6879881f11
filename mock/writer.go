package mock

import (
	"context"

	"github.com/fwojciec/docpull"
)

var _ docpull.PageWriter = (*PageWriter)(nil)

// PageWriter is a mock implementation of docpull.PageWriter.
type PageWriter struct {
	WritePageFn func(ctx context.Context, page *docpull.Page) (string, error)
}

func (w *PageWriter) WritePage(ctx context.Context, page *docpull.Page) (string, error) {
	return w.WritePageFn(ctx, page)
}
