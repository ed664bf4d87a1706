// Package storage is a small bucketed key-value layer with an in-memory and a
// bbolt implementation. Values are raw bytes; json.go adds typed helpers.
package storage

import "errors"

// ErrBucketNotFound is returned when an operation names a bucket that was never created
var ErrBucketNotFound = errors.New("bucket not found")

// Backend stores values under string keys inside named buckets
type Backend interface {
	// CreateBucket is idempotent
	CreateBucket(bucket string) error

	// Put overwrites any existing value for key
	Put(bucket, key string, value []byte) error

	// Get returns nil, nil when the key is absent
	Get(bucket, key string) ([]byte, error)

	// ForEach visits keys in ascending byte order; returning an error stops the walk
	ForEach(bucket string, fn func(key string, value []byte) error) error

	Close() error
}
