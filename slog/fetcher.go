// Package slog provides log/slog decorators for soup services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/soup"
)

// Ensure LoggingFetcher implements soup.Fetcher.
var _ soup.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs each fetch.
type LoggingFetcher struct {
	next   soup.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next soup.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs url, size and duration.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	begin := time.Now()
	body, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Info("fetch",
			"url", url,
			"code", soup.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
		return body, err
	}
	f.logger.Info("fetch",
		"url", url,
		"bytes", len(body),
		"duration", time.Since(begin),
	)
	return body, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
