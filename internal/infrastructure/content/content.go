// Package content retrieves article pages over HTTP.
package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tesso57/headlines/internal/infrastructure/httpclient"
)

// DefaultMaxBodyBytes caps how much of a page is handed to extraction.
const DefaultMaxBodyBytes = 2 << 20

const acceptHeader = "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5"

// ErrStatus reports a non-2xx page response.
var ErrStatus = errors.New("unexpected status")

// Fetcher downloads article HTML.
type Fetcher struct {
	client       httpclient.Client
	maxBodyBytes int
}

// NewFetcher constructs a Fetcher. maxBodyBytes <= 0 selects DefaultMaxBodyBytes.
func NewFetcher(client httpclient.Client, maxBodyBytes int) *Fetcher {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &Fetcher{client: client, maxBodyBytes: maxBodyBytes}
}

// Fetch returns the body of rawURL, truncated to the configured size.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := f.client.Get(ctx, rawURL, map[string]string{"Accept": acceptHeader})
	if err != nil {
		return nil, fmt.Errorf("http fetch: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		snippet := strings.TrimSpace(string(resp.Body()))
		if len(snippet) > 256 {
			snippet = snippet[:256]
		}
		return nil, fmt.Errorf("%w %d: %s", ErrStatus, resp.StatusCode(), snippet)
	}

	body := resp.Body()
	if len(body) > f.maxBodyBytes {
		body = body[:f.maxBodyBytes]
	}
	return body, nil
}
