// Package cache stores computed layouts between runs.
//
// Layouts are pure functions of their snapshot (data, filters and
// configuration), so a layout computed once can be reused until any of
// those inputs changes. [LayoutKey] derives the key from the snapshot
// content; [FileCache] keeps entries on disk for the CLI, and [NullCache]
// disables caching.
package cache

import (
	"context"
	"time"
)

// TTLLayout is how long a cached layout stays valid.
const TTLLayout = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// NullCache is a no-op cache that never stores anything.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return NullCache{}
}

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Cache = NullCache{}
