package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	appConfig "github.com/festy23/goalboard/internal/config"
	"github.com/festy23/goalboard/pkg/retry"
)

// RedisStore persists entries as plain Redis strings.
type RedisStore struct {
	client *redis.Client
	logger *zap.SugaredLogger
}

// NewRedisStore creates a store on top of an existing client.
func NewRedisStore(client *redis.Client, logger *zap.SugaredLogger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

// DialRedis connects to Redis and waits until it answers PING, retrying
// transient failures with retry.RedisConfig.
func DialRedis(ctx context.Context, cfg appConfig.RedisConfig, logger *zap.SugaredLogger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	retryCfg := retry.RedisConfig()
	retryCfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		logger.Warnw("redis ping failed, retrying", "addr", cfg.Addr, "attempt", attempt, "delay", delay, "error", err)
	}
	err := retry.Do(ctx, retryCfg, func() error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	logger.Infow("connected to redis", "addr", cfg.Addr, "db", cfg.DB)
	return NewRedisStore(client, logger), nil
}

// Get returns the value stored under key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		s.logger.Errorw("kv get failed", "key", key, "error", err)
		return nil, err
	}
	return value, nil
}

// Put stores value under key without expiration.
func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		s.logger.Errorw("kv put failed", "key", key, "error", err)
		return err
	}
	s.logger.Debugw("kv put", "key", key, "bytes", len(value))
	return nil
}

// Ping verifies the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
