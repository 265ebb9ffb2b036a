package slog

import (
	"log/slog"

	"github.com/fwojciec/soup"
)

// Ensure ErrorReporter implements soup.ErrorReporter.
var _ soup.ErrorReporter = (*ErrorReporter)(nil)

// ErrorReporter reports fetch failures as error-level log records.
type ErrorReporter struct {
	logger *slog.Logger
}

// NewErrorReporter creates a new ErrorReporter.
func NewErrorReporter(logger *slog.Logger) *ErrorReporter {
	return &ErrorReporter{logger: logger}
}

// ReportError logs msg at error level.
func (r *ErrorReporter) ReportError(msg string) {
	r.logger.Error("fetch failed", "error", msg)
}
