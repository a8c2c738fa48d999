package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryLocker is a process-local Locker used when Redis is disabled.
// It only protects against concurrent analysis within one instance.
type MemoryLocker struct {
	mu    sync.Mutex
	items map[string]time.Time
}

// NewMemoryLocker creates a new in-memory locker
func NewMemoryLocker() *MemoryLocker {
	locker := &MemoryLocker{
		items: make(map[string]time.Time),
	}

	// Start cleanup goroutine to remove expired locks
	go locker.cleanupExpired()

	return locker
}

// Acquire takes the lock if it is free or the previous holder expired
func (ml *MemoryLocker) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if expiry, exists := ml.items[key]; exists && time.Now().Before(expiry) {
		return false, nil
	}
	ml.items[key] = time.Now().Add(ttl)
	return true, nil
}

// Release frees the lock
func (ml *MemoryLocker) Release(_ context.Context, key string) error {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	delete(ml.items, key)
	return nil
}

func (ml *MemoryLocker) cleanupExpired() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ml.mu.Lock()
		now := time.Now()
		for key, expiry := range ml.items {
			if now.After(expiry) {
				delete(ml.items, key)
			}
		}
		ml.mu.Unlock()
	}
}
