package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"taskflow-api/pkg/config"
	"taskflow-api/pkg/logger"
)

// Client wraps the Redis client used as the rate limiter backend.
type Client struct {
	rdb *redis.Client
}

// NewClient creates a Redis client from config and verifies the connection.
func NewClient(cfg *config.RedisConfig) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	if cfg.Password != "" {
		opt.Password = cfg.Password
	}
	if cfg.DB > 0 {
		opt.DB = cfg.DB
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("Redis connected", "url", cfg.URL)

	return &Client{rdb: rdb}, nil
}

// Raw exposes the underlying client for script-based consumers.
func (c *Client) Raw() *redis.Client {
	return c.rdb
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
