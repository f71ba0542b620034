package cache

import (
	"context"
	"fmt"
	"time"

	"careconnect-api/core/config"
	"careconnect-api/core/constants"
	"careconnect-api/core/logger"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	SetOTP(ctx context.Context, key, code string) error
	GetOTP(ctx context.Context, key string) (string, error)
	DeleteOTP(ctx context.Context, key string) error
	AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
	Close() error
}

type redisCache struct {
	client *redis.Client
}

func InitCache(cfg config.RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Cache:InitCache:Ping", err)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis initialized successfully", "host", cfg.Host, "port", cfg.Port, "db", cfg.DB)
	return &redisCache{client: client}, nil
}

func (c *redisCache) SetOTP(ctx context.Context, key, code string) error {
	return c.client.Set(ctx, constants.OTPKeyPrefix+key, code, time.Duration(constants.OTPExpiryMinutes)*time.Minute).Err()
}

// GetOTP returns the stored code or "" when absent or expired.
func (c *redisCache) GetOTP(ctx context.Context, key string) (string, error) {
	code, err := c.client.Get(ctx, constants.OTPKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func (c *redisCache) DeleteOTP(ctx context.Context, key string) error {
	return c.client.Del(ctx, constants.OTPKeyPrefix+key).Err()
}

func (c *redisCache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return c.client.Set(ctx, constants.TokenBlacklistPrefix+token, "1", ttl).Err()
}

func (c *redisCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, constants.TokenBlacklistPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
