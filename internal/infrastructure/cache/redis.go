// Package cache caché Redis de lectura para las consultas de usuarios y productos del servicio de órdenes.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ecomicro:lookup:"

// NewRedisClient parsea REDIS_URL y verifica la conexión con PING.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func userKey(id int64) string    { return fmt.Sprintf("%suser:%d", keyPrefix, id) }
func productKey(id int64) string { return fmt.Sprintf("%sproduct:%d", keyPrefix, id) }
