package usecase

import (
	"context"
	"net/url"
	"sync"

	"github.com/stretchr/testify/mock"
	"github.com/tesso57/headlines/internal/domain/reading"
)

type stubBatchLoader struct {
	mock.Mock
}

func (s *stubBatchLoader) Load(ctx context.Context, q reading.Query) ([]reading.RawArticle, error) {
	args := s.Called(ctx, q)
	articles, _ := args.Get(0).([]reading.RawArticle)
	return articles, args.Error(1)
}

type stubPageFetcher struct {
	mock.Mock
}

func (s *stubPageFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	args := s.Called(ctx, rawURL)
	body, _ := args.Get(0).([]byte)
	return body, args.Error(1)
}

type stubExtractor struct {
	mock.Mock
}

func (s *stubExtractor) Extract(html []byte, base *url.URL) (string, error) {
	args := s.Called(string(html), base.String())
	return args.String(0), args.Error(1)
}

type memoryCache struct {
	mu    sync.Mutex
	items map[string]string
	err   error
}

func (c *memoryCache) Get(rawURL string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return "", false, c.err
	}
	text, ok := c.items[rawURL]
	return text, ok, nil
}

func (c *memoryCache) Put(rawURL, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	if c.items == nil {
		c.items = make(map[string]string)
	}
	c.items[rawURL] = text
	return nil
}

// contentByURL answers FetchAndExtract from a fixed table.
type contentByURL map[string]string

func (c contentByURL) FetchAndExtract(_ context.Context, rawURL string) string {
	if text, ok := c[rawURL]; ok {
		return text
	}
	return reading.FallbackDetail
}
