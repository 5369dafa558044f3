package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/tesso57/headlines/internal/application/settings"
	"github.com/tesso57/headlines/internal/application/usecase"
	"github.com/tesso57/headlines/internal/domain/reading"
	"github.com/tesso57/headlines/internal/infrastructure/cache"
	"github.com/tesso57/headlines/internal/infrastructure/config"
	"github.com/tesso57/headlines/internal/infrastructure/content"
	"github.com/tesso57/headlines/internal/infrastructure/extract"
	"github.com/tesso57/headlines/internal/infrastructure/feed"
	"github.com/tesso57/headlines/internal/infrastructure/httpclient"
	"github.com/tesso57/headlines/internal/infrastructure/logger"
	"github.com/tesso57/headlines/internal/infrastructure/newsapi"
	"github.com/tesso57/headlines/internal/presentation/terminal"
	"github.com/tesso57/headlines/internal/presentation/tui"
	"go.uber.org/zap"
)

// envAPIKey holds the NewsAPI credential.
const envAPIKey = "NEWSAPI_KEY"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "headlines: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	_ = godotenv.Load()

	store, err := config.Load("", args...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := store.Settings

	log, closeLog, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := httpclient.NewRestyClient(cfg.FetchTimeout(), cfg.Fetch.UserAgent)

	loader, err := newLoader(cfg, client)
	if err != nil {
		return err
	}

	contentCache, err := cache.Open(cfg.Cache.Backend, cfg.Cache.Path)
	if err != nil {
		return fmt.Errorf("open content cache: %w", err)
	}
	defer func() { _ = contentCache.Close() }()

	contents := usecase.NewContentService(
		content.NewFetcher(client, cfg.Fetch.MaxBodyBytes),
		extract.New(),
		contentCache,
		log,
	)
	population := usecase.NewPopulationService(loader, contents, log)
	population.Workers = cfg.Fetch.Workers
	population.Progress = progressPrinter(os.Stderr)

	log.Info("starting session",
		zap.String("source", cfg.News.Source),
		zap.String("query", cfg.News.Query),
		zap.String("config", store.Path()),
	)

	model := tui.NewModel(cfg, log)
	fmt.Fprintln(os.Stderr, "Fetching articles...")
	if err := model.Populate(ctx, population, cfg.Query(time.Now())); err != nil {
		log.Error("population failed", zap.Error(err))
		return err
	}

	if _, err := terminal.Run(ctx, model); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		log.Error("terminal session failed", zap.Error(err))
		return err
	}
	log.Info("session finished")
	return nil
}

func newLoader(cfg settings.Settings, client httpclient.Client) (usecase.BatchLoader, error) {
	switch cfg.News.Source {
	case "", "newsapi":
		loader, err := newsapi.NewLoader(client, newsapi.Config{
			BaseURL:  cfg.News.APIBaseURL,
			APIKey:   os.Getenv(envAPIKey),
			Endpoint: cfg.News.Endpoint,
		})
		if err != nil {
			if errors.Is(err, newsapi.ErrMissingAPIKey) {
				return nil, fmt.Errorf("%w: set %s in the environment or .env", err, envAPIKey)
			}
			return nil, err
		}
		return loader, nil
	case "rss":
		return feed.NewLoader(cfg.News.FeedURL, cfg.Fetch.UserAgent), nil
	default:
		return nil, fmt.Errorf("unknown news source %q", cfg.News.Source)
	}
}

func progressPrinter(w io.Writer) usecase.ProgressFunc {
	return func(done, total int, article reading.RawArticle) {
		fmt.Fprintf(w, "[%d/%d] %s\n", done, total, article.Title)
	}
}
