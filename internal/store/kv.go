package store

import (
	"context"
	"errors"
)

// ErrNotFound marks an absent key; callers fall back to the documented
// per-key default.
var ErrNotFound = errors.New("store: not found")

// KV is the persistence port: opaque string keys mapping to JSON-serialized
// snapshots of the in-memory structures.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
