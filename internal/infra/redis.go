package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	redisConnectAttempts = 3
	redisRetryDelay      = 2 * time.Second
)

// NewRedisClient parses REDIS_URL and pings the server, retrying a few times
// while it comes up.
func NewRedisClient(ctx context.Context, cfg *Config, logger zerolog.Logger) (*redis.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= redisConnectAttempts; attempt++ {
		client := redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err == nil {
			logger.Info().Str("addr", opts.Addr).Int("attempt", attempt).Msg("redis connected")
			return client, nil
		}
		_ = client.Close()
		lastErr = err
		logger.Warn().Err(err).Int("attempt", attempt).Msg("redis ping failed")

		if attempt < redisConnectAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(redisRetryDelay):
			}
		}
	}
	return nil, fmt.Errorf("connect redis after %d attempts: %w", redisConnectAttempts, lastErr)
}
