package contracts

import (
	"context"
	"time"
)

// RedisRepository backs short-lived coordination state, primarily the
// idempotency keys guarding the compliance payment endpoint.
type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	// TrySetNX reports whether the key was newly claimed. A false return
	// with a nil error means another request holds the key.
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}
