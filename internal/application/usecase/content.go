package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/tesso57/headlines/internal/domain/reading"
	"go.uber.org/zap"
)

// ErrInvalidURL is returned for article URLs that cannot be fetched.
var ErrInvalidURL = errors.New("invalid article url")

// ContentService fetches article pages and extracts their text, degrading to
// reading.FallbackDetail on any failure.
type ContentService struct {
	Pages     PageFetcher
	Extractor Extractor
	Cache     ContentCache
	Logger    *zap.Logger
}

// NewContentService constructs a ContentService. cache and logger may be nil.
func NewContentService(pages PageFetcher, extractor Extractor, cache ContentCache, logger *zap.Logger) *ContentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return new(ContentService{
		Pages:     pages,
		Extractor: extractor,
		Cache:     cache,
		Logger:    logger,
	})
}

// FetchAndExtract returns the readable text behind rawURL or the fallback detail.
func (s *ContentService) FetchAndExtract(ctx context.Context, rawURL string) string {
	text, err := s.Resolve(ctx, rawURL)
	if err != nil {
		s.logger().Warn("article content unavailable",
			zap.String("url", rawURL),
			zap.Error(err),
		)
		return reading.FallbackDetail
	}
	return text
}

// Resolve fetches and extracts rawURL, reporting the first failure.
func (s *ContentService) Resolve(ctx context.Context, rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	base, err := parseArticleURL(rawURL)
	if err != nil {
		return "", err
	}

	if text, ok := s.cached(rawURL); ok {
		return text, nil
	}

	if s.Pages == nil || s.Extractor == nil {
		return "", errors.New("content service is not configured")
	}

	html, err := s.Pages.Fetch(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("fetch page: %w", err)
	}

	text, err := s.Extractor.Extract(html, base)
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}

	if s.Cache != nil {
		if err := s.Cache.Put(rawURL, text); err != nil {
			s.logger().Debug("content cache write failed", zap.String("url", rawURL), zap.Error(err))
		}
	}
	return text, nil
}

func (s *ContentService) cached(rawURL string) (string, bool) {
	if s.Cache == nil {
		return "", false
	}
	text, ok, err := s.Cache.Get(rawURL)
	if err != nil {
		s.logger().Debug("content cache read failed", zap.String("url", rawURL), zap.Error(err))
		return "", false
	}
	return text, ok
}

func (s *ContentService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func parseArticleURL(rawURL string) (*url.URL, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	return u, nil
}
