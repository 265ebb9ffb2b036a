package soup

import (
	"context"
	"fmt"
)

// Getter collapses the outcome of a Fetcher into a FetchResult.
//
// Transport failures are reported to Reporter before Absent is returned.
// Bad responses (non-200 status, non-HTML content type) return Absent
// without a report unless ReportBadResponses is set.
type Getter struct {
	Fetcher  Fetcher
	Reporter ErrorReporter

	// ReportBadResponses reports bad responses the same way as transport
	// failures.
	ReportBadResponses bool
}

// Get fetches url and returns its content, or Absent on any failure.
func (g *Getter) Get(ctx context.Context, url string) FetchResult {
	body, err := g.Fetcher.Fetch(ctx, url)
	if err == nil {
		return Content(body)
	}

	if ErrorCode(err) == EBADRESPONSE && !g.ReportBadResponses {
		return Absent
	}

	if g.Reporter != nil {
		g.Reporter.ReportError(FormatFetchError(url, err))
	}
	return Absent
}

// FormatFetchError formats the message reported for a failed fetch of url.
func FormatFetchError(url string, err error) string {
	return fmt.Sprintf("Error during requests to %s : %v", url, err)
}
