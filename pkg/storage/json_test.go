package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestJSONHelpers(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.CreateBucket("records"))

	require.NoError(t, PutJSON(backend, "records", "b", testRecord{Name: "second", Value: 2}))
	require.NoError(t, PutJSON(backend, "records", "a", testRecord{Name: "first", Value: 1}))

	var got testRecord
	found, err := GetJSON(backend, "records", "a", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, testRecord{Name: "first", Value: 1}, got)

	var missing testRecord
	found, err = GetJSON(backend, "records", "zzz", &missing)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, missing)

	all, err := ListJSON[testRecord](backend, "records", nil)
	require.NoError(t, err)
	assert.Equal(t, []testRecord{{Name: "first", Value: 1}, {Name: "second", Value: 2}}, all)
}

func TestListJSONSkipsCorrupt(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.CreateBucket("records"))
	require.NoError(t, PutJSON(backend, "records", "good", testRecord{Name: "ok"}))
	require.NoError(t, backend.Put("records", "bad", []byte("{not json")))

	var skipped []string
	all, err := ListJSON[testRecord](backend, "records", func(key string, err error) {
		skipped = append(skipped, key)
	})
	require.NoError(t, err)
	assert.Equal(t, []testRecord{{Name: "ok"}}, all)
	assert.Equal(t, []string{"bad"}, skipped)

	var got testRecord
	_, err = GetJSON(backend, "records", "bad", &got)
	assert.Error(t, err)
}
