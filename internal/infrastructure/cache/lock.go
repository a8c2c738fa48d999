package cache

import (
	"context"
	"time"
)

// Locker is an advisory lock used to serialize transcript analysis per
// meeting. Acquire reports false when another holder owns the key.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
