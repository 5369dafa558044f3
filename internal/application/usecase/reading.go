package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/tesso57/headlines/internal/domain/reading"
	"go.uber.org/zap"
)

// ProgressFunc is called after each article of a batch is resolved.
type ProgressFunc func(done, total int, article reading.RawArticle)

// PopulationService loads a batch of articles and resolves each one's content.
type PopulationService struct {
	Loader   BatchLoader
	Content  ContentFetcher
	Workers  int
	Progress ProgressFunc
	Logger   *zap.Logger
}

// NewPopulationService constructs a PopulationService that resolves articles one at a time.
func NewPopulationService(loader BatchLoader, content ContentFetcher, logger *zap.Logger) PopulationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return PopulationService{
		Loader:  loader,
		Content: content,
		Workers: 1,
		Logger:  logger,
	}
}

// Populate loads one batch for q and resolves every article, keeping feed order.
// Only a failure of the batch call itself is returned; a single article that
// cannot be resolved carries reading.FallbackDetail instead.
func (s PopulationService) Populate(ctx context.Context, q reading.Query) ([]reading.Entry, error) {
	if s.Loader == nil || s.Content == nil {
		return nil, fmt.Errorf("population service is not configured")
	}
	raw, err := s.Loader.Load(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load article batch: %w", err)
	}
	raw = q.Truncate(raw)
	s.logger().Info("article batch loaded", zap.Int("count", len(raw)))

	entries := make([]reading.Entry, len(raw))
	if s.Workers <= 1 || len(raw) <= 1 {
		for i, article := range raw {
			entries[i] = s.resolve(ctx, article)
			s.report(i+1, len(raw), article)
		}
		return entries, nil
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		done int
	)
	sem := make(chan struct{}, s.Workers)
	for i, article := range raw {
		sem <- struct{}{}
		wg.Go(func() {
			defer func() { <-sem }()
			entries[i] = s.resolve(ctx, article)

			mu.Lock()
			defer mu.Unlock()
			done++
			s.report(done, len(raw), article)
		})
	}
	wg.Wait()
	return entries, nil
}

func (s PopulationService) resolve(ctx context.Context, article reading.RawArticle) reading.Entry {
	return reading.Entry{
		Headline: article.Title,
		Detail:   s.Content.FetchAndExtract(ctx, article.URL),
		Link:     article.URL,
	}
}

func (s PopulationService) report(done, total int, article reading.RawArticle) {
	if s.Progress != nil {
		s.Progress(done, total, article)
	}
}

func (s PopulationService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
