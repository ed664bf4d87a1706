package storage

import (
	"encoding/json"
	"fmt"
)

// PutJSON stores v JSON-encoded under key
func PutJSON(b Backend, bucket, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return b.Put(bucket, key, data)
}

// GetJSON decodes the value under key into v. found is false when the key
// is absent, in which case v is left untouched.
func GetJSON(b Backend, bucket, key string, v any) (found bool, err error) {
	data, err := b.Get(bucket, key)
	if err != nil || data == nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode JSON for %s: %w", key, err)
	}
	return true, nil
}

// ListJSON decodes every value in bucket, in key order. Values that fail to
// decode are reported through skip and left out.
func ListJSON[T any](b Backend, bucket string, skip func(key string, err error)) ([]T, error) {
	var out []T
	err := b.ForEach(bucket, func(key string, value []byte) error {
		var v T
		if err := json.Unmarshal(value, &v); err != nil {
			if skip != nil {
				skip(key, err)
			}
			return nil
		}
		out = append(out, v)
		return nil
	})
	return out, err
}
