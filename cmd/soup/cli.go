package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/soup"
)

// Parser backends selectable with --backend.
const (
	BackendHTML  = "html"
	BackendXPath = "xpath"
	BackendXML   = "xml"
)

// Output formats selectable with --format.
const (
	FormatText     = "text"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Getter    *soup.Getter
	Parsers   map[string]soup.Parser
	Converter soup.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout            time.Duration `short:"t" default:"10s" env:"SOUP_TIMEOUT" help:"Fetch timeout"`
	Verbose            bool          `short:"v" env:"SOUP_VERBOSE" help:"Log fetch and parse details to stderr"`
	ReportBadResponses bool          `help:"Also report non-200 and non-HTML responses"`

	Get    GetCmd    `cmd:"" help:"Fetch a page and print its HTML"`
	Select SelectCmd `cmd:"" help:"Print the elements of a page or file matching a selector"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// SelectCmd is the "select" subcommand.
type SelectCmd struct {
	Source   string   `arg:"" help:"Page URL or local HTML file"`
	Selector string   `arg:"" help:"Tag name, or a CSS selector, XPath or etree path depending on --backend"`
	Attr     []string `short:"a" name:"attr" sep:"none" placeholder:"NAME=VALUE" help:"Keep elements whose attribute equals the value (repeatable)"`
	Backend  string   `short:"b" enum:"html,xpath,xml" default:"html" env:"SOUP_BACKEND" help:"Parser backend (html, xpath, xml)"`
	Format   string   `short:"f" enum:"text,html,markdown" default:"text" help:"Output format (text, html, markdown)"`
}
