package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/markdowned"
	"github.com/fwojciec/markdowned/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Fetcher markdowned.Fetcher
	Runner  *batch.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Sources     []string      `arg:"" name:"source" help:"Page URLs or saved HTML files to export"`
	Out         string        `short:"o" default:"." env:"MARKDOWNED_OUT" help:"Directory for exported files"`
	NoFile      bool          `help:"Do not write markdown files"`
	Copy        bool          `short:"C" env:"MARKDOWNED_COPY" help:"Copy the exported markdown to the clipboard"`
	Stdout      bool          `help:"Print the exported markdown to stdout"`
	Browser     bool          `short:"b" env:"MARKDOWNED_BROWSER" help:"Render pages in headless Chrome before exporting"`
	Chrome      string        `env:"MARKDOWNED_CHROME" help:"Chrome binary used with --browser (located automatically when empty)"`
	Engine      string        `short:"e" enum:"readability,trafilatura" default:"readability" env:"MARKDOWNED_ENGINE" help:"Article extraction engine (readability, trafilatura)"`
	Thresholds  string        `env:"MARKDOWNED_THRESHOLDS" help:"YAML file overriding heuristic thresholds"`
	URL         string        `short:"u" help:"Page URL for saved HTML files (defaults to their canonical link)"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent export limit"`
	Rate        float64       `default:"1" help:"Requests per second per domain (0 disables)"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Debug       bool          `env:"MARKDOWNED_DEBUG" help:"Log pipeline decisions to stderr"`
}

// ExportCmd exports every source and reports progress.
type ExportCmd struct {
	Sources []string
	Stdout  bool
}

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	// Markdown owns stdout when printing it.
	status := deps.Stdout
	if c.Stdout {
		status = deps.Stderr
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressExported:
			fmt.Fprintf(status, "  %s (%s)\n", event.Payload.FileName, event.Payload.Title)
		case batch.ProgressRetry:
			fmt.Fprintf(deps.Stderr, "  retry %s (attempt %d): %s\n", event.Source, event.Attempt, markdowned.ErrorMessage(event.Error))
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Source, markdowned.ErrorMessage(event.Error))
		}
	}

	result, err := deps.Runner.Run(deps.Ctx, c.Sources, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if len(c.Sources) > 1 {
		fmt.Fprintf(status, "Exported %d of %d pages\n", result.Exported, len(c.Sources))
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d exports failed", result.Failed, len(c.Sources))
	}
	return nil
}
