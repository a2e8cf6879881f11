package docpull

import "context"

// Page is a converted documentation page ready to be written.
type Page struct {
	// Path is the destination relative to the output root,
	// i.e. <area.OutputDir>/<page.OutputFile>.
	Path        string
	URL         string
	Title       string
	Description string
	Content     string // Markdown
}

// PageWriter persists pages.
type PageWriter interface {
	// WritePage writes the page, overwriting any existing file, and returns
	// the full path written.
	WritePage(ctx context.Context, page *Page) (string, error)
}

// Stage is a step of the per-page pipeline.
type Stage string

// Pipeline stages in processing order.
const (
	StageFetching   Stage = "fetching"
	StageExtracting Stage = "extracting"
	StageConverting Stage = "converting"
	StageWriting    Stage = "writing"
	StageDone       Stage = "done"
)

// Outcome records what happened to a single page.
type Outcome struct {
	Area string
	URL  string

	// Stage is StageDone on success, otherwise the stage that failed.
	Stage Stage

	// Path is the file written. Empty unless Stage is StageDone.
	Path string

	// Hash is the content hash of the written document.
	Hash string

	Err error
}

// OK reports whether the page was written.
func (o Outcome) OK() bool {
	return o.Stage == StageDone && o.Err == nil
}

// Report accumulates page outcomes in processing order.
type Report struct {
	Outcomes []Outcome
}

// Add appends an outcome.
func (r *Report) Add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Succeeded returns the number of pages written.
func (r *Report) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of pages skipped or failed.
func (r *Report) Failed() int {
	return len(r.Outcomes) - r.Succeeded()
}
