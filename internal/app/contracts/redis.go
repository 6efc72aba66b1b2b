package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, keys ...string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	AddToSet(ctx context.Context, key string, values ...interface{}) error
	GetSetMembers(ctx context.Context, key string) ([]string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	Expire(ctx context.Context, key string, exp time.Duration) error
	// CompareAndDelete deletes key only while it still holds value. It returns
	// 1 when deleted, 0 when the key is absent and -1 when another value holds it.
	CompareAndDelete(ctx context.Context, key string, value interface{}) (int64, error)
	// CompareAndExpire resets the TTL of key only while it still holds value,
	// with the same result codes as CompareAndDelete.
	CompareAndExpire(ctx context.Context, key string, value interface{}, exp time.Duration) (int64, error)
}
