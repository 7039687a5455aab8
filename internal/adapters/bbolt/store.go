// Package bbolt implements the ports.PatternStore interface using bbolt
// (embedded B+ tree). All sets live in one "sets" bucket keyed by name.
// Writes are transactional, so a crash mid-write cannot corrupt previously
// committed sets.
package bbolt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/corey/kmpgrep/internal/ports"
	bolt "go.etcd.io/bbolt"
)

var bucketSets = []byte("sets")

// Store implements ports.PatternStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

var _ ports.PatternStore = (*Store)(nil)

// NewStore opens (or creates) a bbolt database at the given path, creating
// the parent directory if needed.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSet stores patterns under name, replacing any prior set.
func (s *Store) SaveSet(name string, patterns []string) error {
	if name == "" {
		return errors.New("empty set name")
	}
	data := encodePatterns(patterns)
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketSets)
		if err != nil {
			return err
		}
		return b.Put([]byte(name), data)
	})
}

// LoadSet returns the patterns saved under name.
func (s *Store) LoadSet(name string) ([]string, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSets)
		if b == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := b.Get([]byte(name)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %q", ports.ErrSetNotFound, name)
	}

	patterns, err := decodePatterns(data)
	if err != nil {
		return nil, fmt.Errorf("decode set %q: %w", name, err)
	}
	return patterns, nil
}

// ListSets returns every saved set name. bbolt iterates keys in byte order.
func (s *Store) ListSets() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSets)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// DeleteSet removes a set. Idempotent: deleting a missing set is not an error.
func (s *Store) DeleteSet(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSets)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(name))
	})
}
