package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/soup"
)

// Ensure the logging types implement the soup interfaces.
var (
	_ soup.Parser   = (*LoggingParser)(nil)
	_ soup.Document = (*LoggingDocument)(nil)
)

// LoggingParser wraps a Parser and logs parse and select calls.
type LoggingParser struct {
	next    soup.Parser
	backend string
	logger  *slog.Logger
}

// NewLoggingParser creates a new LoggingParser. The backend name is included
// in every log line.
func NewLoggingParser(next soup.Parser, backend string, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, backend: backend, logger: logger}
}

// Parse delegates to the wrapped parser and wraps the resulting document.
func (p *LoggingParser) Parse(r io.Reader) (soup.Document, error) {
	begin := time.Now()
	doc, err := p.next.Parse(r)
	if err != nil {
		p.logger.Info("parse", "backend", p.backend, "duration", time.Since(begin), "err", err)
		return nil, err
	}
	p.logger.Debug("parse", "backend", p.backend, "duration", time.Since(begin))
	return &LoggingDocument{next: doc, backend: p.backend, logger: p.logger}, nil
}

// LoggingDocument wraps a Document and logs selections.
type LoggingDocument struct {
	next    soup.Document
	backend string
	logger  *slog.Logger
}

// Select delegates to the wrapped document and logs the match count.
func (d *LoggingDocument) Select(selector string) ([]soup.Element, error) {
	begin := time.Now()
	elems, err := d.next.Select(selector)
	if err != nil {
		d.logger.Info("select", "backend", d.backend, "selector", selector, "err", err)
		return nil, err
	}
	d.logger.Debug("select",
		"backend", d.backend,
		"selector", selector,
		"matches", len(elems),
		"duration", time.Since(begin),
	)
	return elems, nil
}
