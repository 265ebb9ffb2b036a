package soup

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a GET for url and returns the exact response body when
	// the response is a 200 with an HTML content type.
	//
	// Transport failures are returned as EUNAVAILABLE. Non-200 statuses and
	// non-HTML content types are returned as EBADRESPONSE.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases pooled connections.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// FetchResult is the outcome of a single page fetch: either the page content
// or Absent. The zero value is Absent.
type FetchResult struct {
	content []byte
	ok      bool
}

// Absent is the FetchResult of a failed fetch.
var Absent = FetchResult{}

// Content returns a successful FetchResult holding b.
func Content(b []byte) FetchResult {
	return FetchResult{content: b, ok: true}
}

// Bytes returns the fetched content and whether it is present.
func (r FetchResult) Bytes() ([]byte, bool) {
	return r.content, r.ok
}

// IsAbsent reports whether the fetch failed.
func (r FetchResult) IsAbsent() bool {
	return !r.ok
}

// ErrorReporter is the side channel for fetch failures.
type ErrorReporter interface {
	ReportError(msg string)
}

// ErrorReporterFunc adapts an ordinary function to an ErrorReporter.
type ErrorReporterFunc func(msg string)

// ReportError calls f(msg).
func (f ErrorReporterFunc) ReportError(msg string) {
	f(msg)
}
