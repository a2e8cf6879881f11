// Package crawl orchestrates mirroring of documentation pages: it walks the
// manifest in order and drives each page through fetch, extraction,
// conversion and writing.
package crawl

import (
	"context"
	"fmt"
	"path"

	"github.com/fwojciec/docpull"
	"github.com/fwojciec/docpull/fs"
)

// Runner processes a manifest strictly one page at a time.
type Runner struct {
	Fetcher   docpull.Fetcher
	Extractor docpull.Extractor
	Converter docpull.Converter
	Writer    docpull.PageWriter

	// Limiter paces requests. A nil Limiter disables pacing.
	Limiter docpull.Limiter
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
)

// ProgressEvent reports progress for a single page.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Area      string
	URL       string

	// Path and Hash are set on ProgressCompleted. Hash identifies the
	// written document's bytes, so reruns against an unchanged page report
	// the same value.
	Path string
	Hash string

	// Stage and Error are set on ProgressFailed.
	Stage docpull.Stage
	Error error
}

// ProgressFunc is a callback for reporting progress.
type ProgressFunc func(event ProgressEvent)

// Run processes every page in the manifest and returns the outcomes in
// processing order. Fetch, extraction and conversion failures are recorded
// and the run continues. A write failure or context cancellation stops the
// run and is returned together with the outcomes gathered so far.
func (r *Runner) Run(ctx context.Context, m *docpull.Manifest, progress ProgressFunc) (*docpull.Report, error) {
	report := &docpull.Report{}
	total := m.PageCount()
	notify := func(e ProgressEvent) {
		if progress != nil {
			e.Completed = len(report.Outcomes)
			e.Total = total
			progress(e)
		}
	}

	for _, area := range m.Areas {
		for _, entry := range area.Pages {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			if r.Limiter != nil {
				if err := r.Limiter.Wait(ctx); err != nil {
					return report, err
				}
			}

			url := m.ResolveURL(entry.URL)
			notify(ProgressEvent{Type: ProgressStarted, Area: area.Name, URL: url})

			outcome, err := r.processPage(ctx, area, entry, url)
			report.Add(outcome)
			if err != nil {
				return report, fmt.Errorf("write %s: %w", url, err)
			}

			if outcome.OK() {
				notify(ProgressEvent{Type: ProgressCompleted, Area: area.Name, URL: url, Path: outcome.Path, Hash: outcome.Hash})
			} else {
				notify(ProgressEvent{Type: ProgressFailed, Area: area.Name, URL: url, Stage: outcome.Stage, Error: outcome.Err})
			}
		}
	}

	return report, nil
}

// processPage drives one page through the pipeline. Only a write failure is
// returned as an error; every other failure is reported in the outcome.
func (r *Runner) processPage(ctx context.Context, area docpull.Area, entry docpull.PageEntry, url string) (docpull.Outcome, error) {
	outcome := docpull.Outcome{Area: area.Name, URL: url}
	fail := func(stage docpull.Stage, err error) docpull.Outcome {
		outcome.Stage = stage
		outcome.Err = err
		return outcome
	}

	html, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		return fail(docpull.StageFetching, err), nil
	}

	extracted, err := r.Extractor.Extract(html)
	if err != nil {
		return fail(docpull.StageExtracting, err), nil
	}

	markdown, err := r.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return fail(docpull.StageConverting, err), nil
	}

	title := extracted.Title
	if entry.Title != "" {
		title = entry.Title
	}

	page := &docpull.Page{
		Path:        path.Join(area.OutputDir, entry.OutputFile),
		URL:         url,
		Title:       title,
		Description: extracted.Description,
		Content:     markdown,
	}

	written, err := r.Writer.WritePage(ctx, page)
	if err != nil {
		return fail(docpull.StageWriting, err), err
	}

	outcome.Stage = docpull.StageDone
	outcome.Path = written
	outcome.Hash = ComputeHash(fs.FormatPage(page))
	return outcome, nil
}
