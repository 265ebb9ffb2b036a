package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/soup"
	"github.com/fwojciec/soup/etree"
	"github.com/fwojciec/soup/goquery"
	"github.com/fwojciec/soup/htmlquery"
	"github.com/fwojciec/soup/htmltomarkdown"
	souphttp "github.com/fwojciec/soup/http"
	soupslog "github.com/fwojciec/soup/slog"
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
	// HTTP client used for fetches. Nil uses a client built from --timeout.
	HTTPClient *http.Client
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
		kong.Name("soup"),
		kong.Description("Fetch a web page and print the text of selected elements"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'soup --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := []souphttp.Option{souphttp.WithTimeout(cli.Timeout)}
	if m.HTTPClient != nil {
		opts = append(opts, souphttp.WithClient(m.HTTPClient))
	}
	var fetcher soup.Fetcher = souphttp.NewFetcher(opts...)
	if cli.Verbose {
		fetcher = soupslog.NewLoggingFetcher(fetcher, logger)
	}
	defer fetcher.Close()

	var reporter soup.ErrorReporter = soup.ErrorReporterFunc(func(msg string) {
		fmt.Fprintln(stderr, msg)
	})
	if cli.Verbose {
		reporter = soupslog.NewErrorReporter(logger)
	}

	deps.Getter = &soup.Getter{
		Fetcher:            fetcher,
		Reporter:           reporter,
		ReportBadResponses: cli.ReportBadResponses,
	}
	deps.Parsers = map[string]soup.Parser{
		BackendHTML:  goquery.NewParser(),
		BackendXPath: htmlquery.NewParser(),
		BackendXML:   etree.NewParser(),
	}
	if cli.Verbose {
		for name, p := range deps.Parsers {
			deps.Parsers[name] = soupslog.NewLoggingParser(p, name, logger)
		}
	}
	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}
