// Package feed loads article batches from RSS/Atom feeds.
package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/tesso57/headlines/internal/domain/reading"
)

const feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "headlines/0.1.0"

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, url, userAgent string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = userAgent
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
	return fp.ParseURLWithContext(url, ctx)
}

// Loader implements usecase.BatchLoader for a single feed URL.
// Feed entries are returned in document order; the query only bounds the count.
type Loader struct {
	URL       string
	UserAgent string
}

// NewLoader constructs a Loader for url.
func NewLoader(url, userAgent string) *Loader {
	if strings.TrimSpace(userAgent) == "" {
		userAgent = DefaultUserAgent
	}
	return new(Loader{URL: strings.TrimSpace(url), UserAgent: userAgent})
}

// Load parses the feed and returns its first entries.
func (l *Loader) Load(ctx context.Context, q reading.Query) ([]reading.RawArticle, error) {
	if l.URL == "" {
		return nil, errors.New("feed url is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	parsed, err := ParserFunc(ctx, l.URL, l.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", l.URL, err)
	}

	articles := make([]reading.RawArticle, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		link := strings.TrimSpace(item.Link)
		if link == "" && len(item.Links) > 0 {
			link = strings.TrimSpace(item.Links[0])
		}
		articles = append(articles, reading.RawArticle{Title: strings.TrimSpace(item.Title), URL: link})
	}
	return q.Truncate(articles), nil
}
