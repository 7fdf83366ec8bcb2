package main

import (
	"context"
	"io"
	"time"

	"github.com/semanticgateway/pagelens/digest"
)

// Dependencies holds the wired pipeline and I/O for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Service *digest.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout time.Duration `default:"15s" help:"HTTP fetch timeout"`
	Verbose bool          `short:"v" help:"Log fetch and extraction details to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract a page into markdown and structured data"`
	Suggest SuggestCmd `cmd:"" help:"Suggest business profile fields from a page"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL      string `arg:"" help:"Page URL to extract"`
	PDFs     bool   `short:"p" help:"Include linked PDF documents in the result"`
	JSON     bool   `short:"j" help:"Print the full result as JSON instead of markdown"`
	Markdown bool   `short:"m" help:"Print only the markdown digest"`
	Out      string `short:"o" type:"path" help:"Also write the digest to a directory as markdown"`
}

// SuggestCmd is the "suggest" subcommand.
type SuggestCmd struct {
	URL string `arg:"" help:"Page URL to analyze"`
}
