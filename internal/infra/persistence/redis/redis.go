// Package redis keeps the bearer credential in Redis so several console
// instances can share one operator session.
package redis

import (
	"context"
	"time"

	"adminpanel/config"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// NewClient opens a client and verifies the server answers.
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()

		return nil, errors.Wrap(err, "redis ping")
	}

	return client, nil
}
