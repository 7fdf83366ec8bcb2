package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/semanticgateway/pagelens/digest"
	"github.com/semanticgateway/pagelens/goquery"
	lenshttp "github.com/semanticgateway/pagelens/http"
	lensslog "github.com/semanticgateway/pagelens/slog"
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
	// Service is exposed for end-to-end testing; Run builds it when nil.
	Service *digest.Service
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagelens"),
		kong.Description("Extract LLM-ready markdown and business facts from web pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagelens --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.Service == nil {
		m.Service = buildService(cli, stderr)
	}
	deps.Service = m.Service
	defer m.Service.Fetcher.Close()

	return kongCtx.Run(deps)
}

// buildService wires the fetch-and-extract pipeline, wrapping the backends
// with logging decorators when --verbose is set.
func buildService(cli *CLI, stderr io.Writer) *digest.Service {
	fetcher := lenshttp.NewFetcher(lenshttp.WithTimeout(cli.Timeout))
	extractor := goquery.NewExtractor()

	svc := &digest.Service{
		Fetcher:   fetcher,
		Extractor: extractor,
		Parser:    extractor,
	}
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		logging := lensslog.NewLoggingExtractor(extractor, logger)
		svc.Fetcher = lensslog.NewLoggingFetcher(fetcher, logger)
		svc.Extractor = logging
		svc.Parser = logging
	}
	return svc
}
