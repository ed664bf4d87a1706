package storage

import (
	"fmt"
	"log"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"
)

// BboltBackend implements Backend on a single bbolt file
type BboltBackend struct {
	db *bolt.DB
}

// NewBboltBackend opens (or creates) the database at dbPath. A second process
// holding the file makes this fail after a second instead of blocking.
func NewBboltBackend(dbPath string) (*BboltBackend, error) {
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	log.Printf("[STORAGE] Bbolt storage opened at %s", dbPath)
	return &BboltBackend{db: db}, nil
}

func (b *BboltBackend) CreateBucket(bucket string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
}

func (b *BboltBackend) Put(bucket, key string, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket([]byte(bucket))
		if bkt == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
		}
		return bkt.Put([]byte(key), value)
	})
}

func (b *BboltBackend) Get(bucket, key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket([]byte(bucket))
		if bkt == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
		}
		if v := bkt.Get([]byte(key)); v != nil {
			// only valid for the life of the transaction
			value = slices.Clone(v)
		}
		return nil
	})
	return value, err
}

func (b *BboltBackend) ForEach(bucket string, fn func(key string, value []byte) error) error {
	return b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket([]byte(bucket))
		if bkt == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
		}
		return bkt.ForEach(func(k, v []byte) error {
			return fn(string(k), slices.Clone(v))
		})
	})
}

func (b *BboltBackend) Close() error {
	return b.db.Close()
}
