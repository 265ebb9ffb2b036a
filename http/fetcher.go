// Package http provides an HTTP-based implementation of soup.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/soup"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements soup.Fetcher at compile time.
var _ soup.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain GET requests.
// It adds no headers, retries, or redirect policy beyond the client's
// defaults.
type Fetcher struct {
	client     *http.Client
	timeout    time.Duration
	timeoutSet bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
// Combined with WithClient, it applies to a copy of that client.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
		f.timeoutSet = true
	}
}

// WithClient sets the HTTP client used for requests. The client owns the
// connection pool; Close releases its idle connections.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	switch {
	case f.client == nil:
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	case f.timeoutSet:
		c := *f.client
		c.Timeout = f.timeout
		f.client = &c
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, soup.Errorf(soup.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &soup.Error{Code: soup.EUNAVAILABLE, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if !isGoodResponse(resp) {
		return nil, soup.Errorf(soup.EBADRESPONSE, "HTTP %d (%s) for %s",
			resp.StatusCode, resp.Header.Get("Content-Type"), rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &soup.Error{Code: soup.EUNAVAILABLE, Message: err.Error(), Err: err}
	}

	return body, nil
}

// Close releases idle connections held by the client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// isGoodResponse reports whether resp is a 200 with an HTML content type.
func isGoodResponse(resp *http.Response) bool {
	if resp.StatusCode != http.StatusOK {
		return false
	}
	contentType := resp.Header.Get("Content-Type")
	return contentType != "" && strings.Contains(strings.ToLower(contentType), "html")
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return soup.Errorf(soup.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return soup.Errorf(soup.EINVALID, "invalid URL %q: scheme must be http or https", rawURL)
	}
	if u.Host == "" {
		return soup.Errorf(soup.EINVALID, "invalid URL %q: missing host", rawURL)
	}
	return nil
}
