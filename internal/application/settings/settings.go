// Package settings defines application-level configuration data.
package settings

import (
	"time"

	"github.com/tesso57/headlines/internal/domain/reading"
)

// KeyMapConfig defines the configuration for keybindings.
// Each value is a comma separated list of key names.
type KeyMapConfig struct {
	Quit     string `yaml:"quit" kong:"help='Quit keys',default='q,esc'"`
	Unselect string `yaml:"unselect" kong:"help='Clear selection keys',default='h,left'"`
	Down     string `yaml:"down" kong:"help='Next article keys',default='j,down'"`
	Up       string `yaml:"up" kong:"help='Previous article keys',default='k,up'"`
	First    string `yaml:"first" kong:"help='First article keys',default='g,home'"`
	Last     string `yaml:"last" kong:"help='Last article keys',default='G,end'"`
	Toggle   string `yaml:"toggle" kong:"help='Toggle read status keys',default='l,right,enter'"`
	Open     string `yaml:"open" kong:"help='Open in browser keys',default='o'"`
}

// ThemeConfig defines the colors used by the renderer.
type ThemeConfig struct {
	HeaderForeground string `yaml:"header_foreground" kong:"help='Block title foreground',default='#f1f5f9'"`
	HeaderBackground string `yaml:"header_background" kong:"help='Block title background',default='#1e40af'"`
	NormalRow        string `yaml:"normal_row" kong:"help='Even row background',default='#020617'"`
	AltRow           string `yaml:"alt_row" kong:"help='Odd row background',default='#0f172a'"`
	SelectedRow      string `yaml:"selected_row" kong:"help='Selected row background',default='#1e293b'"`
	Text             string `yaml:"text" kong:"help='Text foreground',default='#e2e8f0'"`
	CompletedText    string `yaml:"completed_text" kong:"help='Completed headline foreground',default='#22c55e'"`
	StatusText       string `yaml:"status_text" kong:"help='Header status line foreground',default='#94a3b8'"`
}

// NewsConfig describes where the article batch comes from.
type NewsConfig struct {
	Source     string `yaml:"source" kong:"help='Article source (newsapi/rss)',default='newsapi'"`
	Endpoint   string `yaml:"endpoint" kong:"help='NewsAPI endpoint (everything/top-headlines)',default='everything'"`
	APIBaseURL string `yaml:"api_base_url" kong:"help='NewsAPI base URL',default='https://newsapi.org/v2'"`
	FeedURL    string `yaml:"feed_url" kong:"help='RSS/Atom feed URL for the rss source',default='https://news.ycombinator.com/rss'"`
	Query      string `yaml:"query" kong:"help='Free text query',default='Trump America'"`
	Category   string `yaml:"category" kong:"help='Category (top-headlines only)'"`
	Language   string `yaml:"language" kong:"help='Two letter language code',default='en'"`
	FromDays   int    `yaml:"from_days" kong:"help='Look back this many days',default='10'"`
	SortBy     string `yaml:"sort_by" kong:"help='Sort order (relevancy/popularity/publishedAt)',default='popularity'"`
	Limit      int    `yaml:"limit" kong:"help='Maximum number of articles',default='10'"`
}

// FetchConfig controls article page retrieval.
type FetchConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds" kong:"help='HTTP timeout in seconds (0 uses transport defaults)',default='0'"`
	UserAgent      string `yaml:"user_agent" kong:"help='User-Agent header',default='headlines/0.1.0'"`
	Workers        int    `yaml:"workers" kong:"help='Articles resolved in parallel',default='1'"`
	MaxBodyBytes   int    `yaml:"max_body_bytes" kong:"help='Largest article page read',default='2097152'"`
}

// CacheConfig selects the extracted-content cache.
type CacheConfig struct {
	Backend string `yaml:"backend" kong:"help='Content cache backend (none/sqlite/bolt)',default='sqlite'"`
	Path    string `yaml:"path" kong:"help='Content cache file path'"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level" kong:"help='Log level (debug/info/warn/error)',default='info'"`
	File  string `yaml:"file" kong:"help='Log file path'"`
}

// Settings represents the application configuration.
type Settings struct {
	KeyMap KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme  ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	News   NewsConfig   `yaml:"news" kong:"embed,prefix='news.'"`
	Fetch  FetchConfig  `yaml:"fetch" kong:"embed,prefix='fetch.'"`
	Cache  CacheConfig  `yaml:"cache" kong:"embed,prefix='cache.'"`
	Log    LogConfig    `yaml:"log" kong:"embed,prefix='log.'"`
}

// Query builds the batch query described by the news settings, relative to now.
func (s Settings) Query(now time.Time) reading.Query {
	q := reading.Query{
		Text:     s.News.Query,
		Category: s.News.Category,
		Language: s.News.Language,
		SortBy:   s.News.SortBy,
		Limit:    s.News.Limit,
	}
	if s.News.FromDays > 0 {
		q.From = now.AddDate(0, 0, -s.News.FromDays)
		q.To = now
	}
	return q
}

// FetchTimeout returns the configured HTTP timeout.
func (s Settings) FetchTimeout() time.Duration {
	if s.Fetch.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(s.Fetch.TimeoutSeconds) * time.Second
}
