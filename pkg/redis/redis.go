package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ikkim/fyyur/config"
	"github.com/ikkim/fyyur/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes the Redis connection
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"addr": cfg.Addr(),
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"addr": cfg.Addr(),
		})
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully")
	return nil
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection")
		return client.Close()
	}
	return nil
}

// AppendList pushes values onto the list at key and resets its expiry.
func AppendList(ctx context.Context, rdb redis.Cmdable, key string, ttl time.Duration, values ...string) error {
	if len(values) == 0 {
		return nil
	}
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}

	pipe := rdb.TxPipeline()
	pipe.RPush(ctx, key, args...)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Failed to append Redis list", err, map[string]interface{}{
			"key": key,
		})
		return err
	}
	return nil
}

// DrainList returns the whole list at key and deletes it in one step.
// A missing key yields an empty list.
func DrainList(ctx context.Context, rdb redis.Cmdable, key string) ([]string, error) {
	pipe := rdb.TxPipeline()
	values := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		logger.Error("Failed to drain Redis list", err, map[string]interface{}{
			"key": key,
		})
		return nil, err
	}
	return values.Val(), nil
}
