package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/markdowned"
	"github.com/fwojciec/markdowned/batch"
	"github.com/fwojciec/markdowned/clipboard"
	"github.com/fwojciec/markdowned/export"
	"github.com/fwojciec/markdowned/extract"
	"github.com/fwojciec/markdowned/fs"
	"github.com/fwojciec/markdowned/goquery"
	"github.com/fwojciec/markdowned/htmltomarkdown"
	mdhttp "github.com/fwojciec/markdowned/http"
	"github.com/fwojciec/markdowned/readability"
	"github.com/fwojciec/markdowned/rod"
	mdslog "github.com/fwojciec/markdowned/slog"
	"github.com/fwojciec/markdowned/trafilatura"
	"github.com/fwojciec/markdowned/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher replaces the HTTP or browser fetcher for remote pages.
	// Set before calling Run().
	Fetcher markdowned.Fetcher

	// Clipboard replaces the system clipboard.
	Clipboard markdowned.Clipboard

	// Now returns the export time. Defaults to time.Now.
	Now func() time.Time

	// RetryDelays overrides the fetch retry backoff.
	RetryDelays []time.Duration
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Now: time.Now}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("markdowned"),
		kong.Description("Export web pages as clean Markdown files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	deps, err := m.wire(ctx, cli, stdout, stderr)
	if err != nil {
		return err
	}
	defer deps.Fetcher.Close()

	cmd := &ExportCmd{Sources: cli.Sources, Stdout: cli.Stdout}
	return cmd.Run(deps)
}

// wire builds the export pipeline from parsed flags.
func (m *Main) wire(ctx context.Context, cli *CLI, stdout, stderr io.Writer) (*Dependencies, error) {
	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	thresholds, err := yaml.LoadThresholdsFile(cli.Thresholds)
	if err != nil {
		return nil, fmt.Errorf("failed to load thresholds: %s", markdowned.ErrorMessage(err))
	}

	var article markdowned.Extractor
	switch cli.Engine {
	case "trafilatura":
		article = trafilatura.NewExtractor()
	default:
		article = readability.NewExtractor()
	}

	selector := &extract.Selector{
		Article:    mdslog.NewLoggingExtractor(article, cli.Engine, logger),
		Main:       mdslog.NewLoggingExtractor(goquery.NewMainContentExtractor(thresholds), "main", logger),
		Scorer:     mdslog.NewLoggingScorer(goquery.NewAppSignalScorer(thresholds), logger),
		Document:   goquery.NewDocumentExtractor(),
		Thresholds: thresholds.ContentQuality,
	}

	exporter := &export.Exporter{
		Selector: mdslog.NewLoggingSelector(selector, logger),
		Renderer: mdslog.NewLoggingRenderer(htmltomarkdown.NewRenderer(htmltomarkdown.NewConverter()), logger),
		Notifier: NewWriterNotifier(stderr),
		Now:      m.Now,
	}

	var writers multiFileWriter
	if !cli.NoFile {
		writers = append(writers, fs.NewWriter(cli.Out))
	}
	if cli.Stdout {
		writers = append(writers, NewStdoutWriter(stdout))
	}
	if len(writers) > 0 {
		exporter.Files = writers
	}

	if cli.Copy {
		exporter.Clipboard = m.Clipboard
		if exporter.Clipboard == nil {
			exporter.Clipboard = clipboard.NewClipboard()
		}
	}

	remote, err := m.remoteFetcher(cli)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	fetcher := &SourceFetcher{
		Remote: rod.NewLoggingFetcher(remote, logger),
		URL:    cli.URL,
	}

	return &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Fetcher: fetcher,
		Runner: &batch.Runner{
			Fetcher:     fetcher,
			Exporter:    mdslog.NewLoggingExporter(exporter, logger),
			Limiter:     batch.NewDomainLimiter(cli.Rate),
			Concurrency: cli.Concurrency,
			RetryDelays: m.RetryDelays,
		},
	}, nil
}

// remoteFetcher returns the fetcher for URL sources. The browser is only
// launched when a URL source needs it.
func (m *Main) remoteFetcher(cli *CLI) (markdowned.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}
	if cli.Browser && hasRemoteSource(cli.Sources) {
		opts := []rod.Option{rod.WithFetchTimeout(cli.Timeout)}
		if cli.Chrome != "" {
			opts = append(opts, rod.WithBrowserBin(cli.Chrome))
		}
		return rod.NewFetcher(opts...)
	}
	return mdhttp.NewFetcher(mdhttp.WithTimeout(cli.Timeout)), nil
}
