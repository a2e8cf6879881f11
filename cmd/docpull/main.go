package main

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docpull"
	"github.com/fwojciec/docpull/crawl"
	"github.com/fwojciec/docpull/fs"
	"github.com/fwojciec/docpull/goquery"
	"github.com/fwojciec/docpull/htmltomarkdown"
	dphttp "github.com/fwojciec/docpull/http"
	dpslog "github.com/fwojciec/docpull/slog"
	"github.com/fwojciec/docpull/yaml"
	"github.com/google/uuid"
)

//go:embed manifest.yaml
var defaultManifest []byte

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// HTTPClient is used by the default fetcher when set.
	HTTPClient *http.Client

	// Fetcher overrides the HTTP fetcher. Set before calling Run().
	Fetcher docpull.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docpull"),
		kong.Description("Mirror documentation pages into Markdown content files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	manifest, err := loadManifest(cli.Manifest)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	logger := newLogger(stderr, cli.Verbose)

	fetcher := m.Fetcher
	if fetcher == nil {
		opts := []dphttp.Option{dphttp.WithTimeout(cli.Timeout)}
		if m.HTTPClient != nil {
			opts = append(opts, dphttp.WithClient(m.HTTPClient))
		}
		fetcher = dphttp.NewFetcher(opts...)
	}
	defer fetcher.Close()

	runner := &crawl.Runner{
		Fetcher:   dpslog.NewLoggingFetcher(fetcher, logger),
		Extractor: dpslog.NewLoggingExtractor(goquery.NewExtractor(goquery.WithDetector(goquery.NewDetector())), logger),
		Converter: dpslog.NewLoggingConverter(htmltomarkdown.NewConverter(), logger),
		Writer:    dpslog.NewLoggingPageWriter(fs.NewWriter(cli.Root), logger),
		Limiter:   crawl.NewIntervalLimiter(cli.Delay),
	}

	logger.Info("crawl started", "pages", manifest.PageCount(), "root", cli.Root)

	report, err := runner.Run(ctx, manifest, progressPrinter(stdout, logger))
	printSummary(stdout, report)
	return err
}

// loadManifest reads the manifest at path, or the embedded default when
// path is empty.
func loadManifest(path string) (*docpull.Manifest, error) {
	if path == "" {
		return yaml.ParseManifest(defaultManifest)
	}
	return yaml.LoadManifest(path)
}

// newLogger returns a text logger tagged with a per-run id.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run", uuid.NewString())
}

// progressPrinter writes per-page lines to w. Saved pages are also logged
// with their content hash so successive runs can be compared.
func progressPrinter(w io.Writer, logger *slog.Logger) crawl.ProgressFunc {
	return func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(w, "Fetching %s\n", e.URL)
		case crawl.ProgressCompleted:
			fmt.Fprintf(w, "  saved %s\n", e.Path)
			logger.Info("page saved",
				"area", e.Area,
				"url", e.URL,
				"path", e.Path,
				"hash", e.Hash,
			)
		case crawl.ProgressFailed:
			fmt.Fprintf(w, "  skip (%s): %s\n", e.Stage, describe(e.Error))
		}
	}
}

func printSummary(w io.Writer, report *docpull.Report) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Processed: %d\n", report.Succeeded())
	fmt.Fprintf(w, "Failed: %d\n", report.Failed())
}

// describe returns the message of an application error, or the full error
// text for anything else.
func describe(err error) string {
	if docpull.ErrorCode(err) == docpull.EINTERNAL {
		return err.Error()
	}
	return docpull.ErrorMessage(err)
}
