package cacherepo

import (
	"context"
)

type Cache interface {
	Get(ctx context.Context, key string) CacheResponse[string]
}

type CacheResponse[T any] interface {
	Result() (T, error)
}
