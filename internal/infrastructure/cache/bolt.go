package cache

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const contentBucket = "contents"

// BoltStore keeps extracted text in a bbolt bucket.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the bbolt file at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(contentBucket))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Get returns the cached text for rawURL.
func (b *BoltStore) Get(rawURL string) (string, bool, error) {
	var (
		text  string
		found bool
	)
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(contentBucket))
		if bucket == nil {
			return nil
		}
		if v := bucket.Get([]byte(rawURL)); v != nil {
			text = string(v)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("read content: %w", err)
	}
	return text, found, nil
}

// Put stores text for rawURL.
func (b *BoltStore) Put(rawURL, text string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(contentBucket))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(rawURL), []byte(text))
	})
	if err != nil {
		return fmt.Errorf("save content: %w", err)
	}
	return nil
}

// Close closes the bbolt file.
func (b *BoltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}
