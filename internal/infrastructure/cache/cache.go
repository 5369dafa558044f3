// Package cache persists extracted article text keyed by URL.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Backend names accepted by Open.
const (
	BackendNone   = "none"
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
)

// Store is a content cache that owns an underlying file handle.
type Store interface {
	Get(rawURL string) (string, bool, error)
	Put(rawURL, text string) error
	Close() error
}

// Open returns the store for backend, creating its file under path.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendNone:
		return noop{}, nil
	case BackendSQLite:
		if err := ensureDir(path); err != nil {
			return nil, err
		}
		return OpenSQLite(path)
	case BackendBolt:
		if err := ensureDir(path); err != nil {
			return nil, err
		}
		return OpenBolt(path)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}

func ensureDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("cache path is empty")
	}
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	return nil
}

type noop struct{}

func (noop) Get(string) (string, bool, error) { return "", false, nil }
func (noop) Put(string, string) error         { return nil }
func (noop) Close() error                     { return nil }
