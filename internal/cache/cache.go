package cache

import (
	"context"
	"time"
)

// Store is the only contract this core needs from a key-value collaborator:
// read a string, write a string with a TTL. Implementations decide
// durability; Redis-backed counters survive a deploy, the in-memory
// fallback does not.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Put(ctx context.Context, key string, value string, ttl time.Duration) error
}
