package ports

import (
	"context"
	"errors"
	"time"

	"mailroom/internal/core/domain/model/kernel"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores opaque read-model payloads. It never holds package number pool
// state.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// MailroomSlugKey is the cache key of a mailroom looked up by slug.
func MailroomSlugKey(organizationID kernel.UUID, slug string) string {
	return "mailroom:" + organizationID.String() + ":" + slug
}
