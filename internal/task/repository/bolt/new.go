package bolt

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bbolt "go.etcd.io/bbolt"

	"lifeplanner/pkg/log"
)

// Repository is the bbolt-backed task document store.
type Repository struct {
	db     *bbolt.DB
	bucket []byte
	l      log.Logger
}

// New opens (creating if needed) the bbolt file backing the task
// collection and ensures the bucket exists.
func New(path, bucket string, l log.Logger) (*Repository, error) {
	if bucket == "" {
		bucket = "tasks"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store dir: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &Repository{db: db, bucket: []byte(bucket), l: l}, nil
}

// Close releases the underlying database file.
func (r *Repository) Close() error {
	return r.db.Close()
}
