package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backendTestSuite runs the same checks against any Backend implementation
func backendTestSuite(t *testing.T, newBackend func(t *testing.T) Backend) {
	t.Run("CreateBucketIdempotent", func(t *testing.T) {
		backend := newBackend(t)

		require.NoError(t, backend.CreateBucket("runs"))
		require.NoError(t, backend.Put("runs", "a", []byte("1")))
		require.NoError(t, backend.CreateBucket("runs"))

		got, err := backend.Get("runs", "a")
		require.NoError(t, err)
		assert.Equal(t, []byte("1"), got, "recreating a bucket must keep its contents")
	})

	t.Run("PutAndGet", func(t *testing.T) {
		backend := newBackend(t)
		require.NoError(t, backend.CreateBucket("runs"))

		require.NoError(t, backend.Put("runs", "key1", []byte("value1")))
		require.NoError(t, backend.Put("runs", "key1", []byte("value2")))

		got, err := backend.Get("runs", "key1")
		require.NoError(t, err)
		assert.Equal(t, []byte("value2"), got)

		got, err = backend.Get("runs", "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("ValueIsCopied", func(t *testing.T) {
		backend := newBackend(t)
		require.NoError(t, backend.CreateBucket("runs"))

		value := []byte("abc")
		require.NoError(t, backend.Put("runs", "k", value))
		value[0] = 'z'

		got, err := backend.Get("runs", "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), got)
	})

	t.Run("UnknownBucket", func(t *testing.T) {
		backend := newBackend(t)

		assert.ErrorIs(t, backend.Put("nope", "k", []byte("v")), ErrBucketNotFound)
		_, err := backend.Get("nope", "k")
		assert.ErrorIs(t, err, ErrBucketNotFound)
		err = backend.ForEach("nope", func(string, []byte) error { return nil })
		assert.ErrorIs(t, err, ErrBucketNotFound)
	})

	t.Run("ForEachOrdered", func(t *testing.T) {
		backend := newBackend(t)
		require.NoError(t, backend.CreateBucket("runs"))

		for _, k := range []string{"c", "a", "b"} {
			require.NoError(t, backend.Put("runs", k, []byte("v"+k)))
		}

		var keys, values []string
		err := backend.ForEach("runs", func(k string, v []byte) error {
			keys = append(keys, k)
			values = append(values, string(v))
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, keys)
		assert.Equal(t, []string{"va", "vb", "vc"}, values)
	})

	t.Run("ForEachStops", func(t *testing.T) {
		backend := newBackend(t)
		require.NoError(t, backend.CreateBucket("runs"))
		require.NoError(t, backend.Put("runs", "a", []byte("1")))
		require.NoError(t, backend.Put("runs", "b", []byte("2")))

		stop := errors.New("stop")
		visited := 0
		err := backend.ForEach("runs", func(string, []byte) error {
			visited++
			return stop
		})
		assert.ErrorIs(t, err, stop)
		assert.Equal(t, 1, visited)
	})
}

func TestMemoryBackend(t *testing.T) {
	backendTestSuite(t, func(t *testing.T) Backend {
		return NewMemoryBackend()
	})
}

func TestBboltBackend(t *testing.T) {
	backendTestSuite(t, func(t *testing.T) Backend {
		backend, err := NewBboltBackend(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		t.Cleanup(func() { backend.Close() })
		return backend
	})
}

func TestBboltReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	backend, err := NewBboltBackend(path)
	require.NoError(t, err)
	require.NoError(t, backend.CreateBucket("runs"))
	require.NoError(t, backend.Put("runs", "k", []byte("kept")))
	require.NoError(t, backend.Close())

	backend, err = NewBboltBackend(path)
	require.NoError(t, err)
	defer backend.Close()

	got, err := backend.Get("runs", "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("kept"), got)
}
