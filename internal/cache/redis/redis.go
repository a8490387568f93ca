package redis

import (
	"context"
	cacherepo "docmanagement/internal/repositories/cache"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const pkg = "redis/"

type Config struct {
	Addr     string
	Password string
	DB       int
}

type Client struct {
	redisClient *redis.Client
}

type redisResponse[T any] struct {
	get func() (T, error)
}

// Result reports a missing key as the zero value with no error.
func (r redisResponse[T]) Result() (T, error) {
	res, err := r.get()
	if errors.Is(err, redis.Nil) {
		var zero T
		return zero, nil
	}

	return res, err
}

func (c *Client) Get(ctx context.Context, key string) cacherepo.CacheResponse[string] {
	cmd := c.redisClient.Get(ctx, key)
	return redisResponse[string]{
		get: cmd.Result,
	}
}

func (c *Client) Ping(ctx context.Context) error {
	return c.redisClient.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.redisClient.Close()
}

func New(ctx context.Context, cfg Config) (*Client, error) {
	op := pkg + "New"

	client := &Client{
		redisClient: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}

	if err := client.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%s: redis: ping failed: %w", op, err)
	}

	return client, nil
}
