// Package config handles configuration loading and saving.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/tesso57/headlines/internal/application/settings"
	"github.com/tesso57/headlines/internal/domain/reading"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "HEADLINES_CONFIG"

// Store manages persisted application settings.
type Store struct {
	Settings   settings.Settings
	configPath string
}

// DefaultPath returns the config file used when no path is given.
func DefaultPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "headlines", "config.yaml"), nil
}

// Load loads the configuration from configPath (or the default location),
// then applies command line flags from args on top of it.
func Load(configPath string, args ...string) (*Store, error) {
	if strings.TrimSpace(configPath) == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := settings.Settings{}
	store := &Store{Settings: cfg, configPath: configPath}

	options := []kong.Option{
		kong.Name("headlines"),
		kong.Description("Terminal news reader."),
	}

	// Only add configuration loader if file exists
	_, statErr := os.Stat(configPath)
	if statErr == nil {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, err
	}

	if _, err := parser.Parse(args); err != nil {
		return nil, err
	}

	store.Settings = normalize(cfg)

	// Save defaults if new file
	if os.IsNotExist(statErr) {
		if err := store.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return store, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.configPath
}

func normalize(cfg settings.Settings) settings.Settings {
	cfg.News.Source = strings.ToLower(strings.TrimSpace(cfg.News.Source))
	cfg.News.Endpoint = strings.ToLower(strings.TrimSpace(cfg.News.Endpoint))
	cfg.News.Query = strings.Join(strings.Fields(cfg.News.Query), " ")
	cfg.News.FeedURL = strings.TrimSpace(cfg.News.FeedURL)
	cfg.News.APIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.News.APIBaseURL), "/")
	if cfg.News.Limit <= 0 || cfg.News.Limit > reading.DefaultBatchLimit {
		cfg.News.Limit = reading.DefaultBatchLimit
	}
	if cfg.News.FromDays < 0 {
		cfg.News.FromDays = 0
	}
	if cfg.Fetch.Workers < 1 {
		cfg.Fetch.Workers = 1
	}

	cfg.Cache.Backend = strings.ToLower(strings.TrimSpace(cfg.Cache.Backend))
	cfg.Cache.Path = strings.TrimSpace(cfg.Cache.Path)
	if cfg.Cache.Path == "" {
		name := "cache.db"
		if cfg.Cache.Backend == "bolt" {
			name = "cache.bolt"
		}
		cfg.Cache.Path = filepath.Join(defaultDataHome(), "headlines", name)
	}
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(defaultDataHome(), "headlines", "headlines.log")
	}
	return cfg
}

func defaultDataHome() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome != "" {
		return dataHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if err == io.EOF {
			return nil, nil // Return nil resolver (no op)
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			if v, ok := values[name]; ok {
				return v, nil
			}
			if v, ok := lookupNested(values, strings.Split(name, ".")); ok {
				return v, nil
			}
		}
		return nil, nil
	}
	return f, nil
}

func lookupNested(values map[string]any, parts []string) (any, bool) {
	if len(parts) < 2 {
		return nil, false
	}
	curr := values
	for _, part := range parts[:len(parts)-1] {
		next, ok := curr[part].(map[string]any)
		if !ok {
			return nil, false
		}
		curr = next
	}
	v, ok := curr[parts[len(parts)-1]]
	return v, ok
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	f, err := os.Create(s.configPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return yaml.NewEncoder(f).Encode(s.Settings)
}
