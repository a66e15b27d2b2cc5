package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/htmltree"
)

// Dependencies holds the services and streams for command execution.
// Nil Extractor/Fetcher fields are constructed from flags at run time;
// tests inject mocks instead.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Extractor htmltree.Extractor
	Fetcher   htmltree.Fetcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool       `short:"v" help:"Enable debug logging"`
	Extract ExtractCmd `cmd:"" default:"withargs" help:"Extract structured content from HTML documents"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Inputs         []string      `arg:"" optional:"" help:"HTML files or URLs (reads stdin when empty)"`
	Format         string        `default:"json" enum:"json,markdown" help:"Output format"`
	Engine         string        `default:"heuristic" enum:"heuristic,readability,trafilatura" help:"Candidate location strategy"`
	PreserveStyles bool          `help:"Keep inline HTML styling in extracted text"`
	Meta           bool          `help:"Wrap each result in a document envelope with id and timestamp"`
	OutDir         string        `type:"path" help:"Write document envelopes as JSON files to this directory instead of stdout"`
	Pretty         bool          `help:"Indent JSON output"`
	Concurrency    int           `short:"c" default:"4" help:"Concurrent extraction limit"`
	Timeout        time.Duration `default:"10s" help:"HTTP fetch timeout"`
}
