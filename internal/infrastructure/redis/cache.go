// Package redis implementa la caché de respuestas HTTP sobre Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache almacena respuestas JSON serializadas con TTL y permite invalidar
// por prefijo de clave.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache conecta a Redis con la URL dada (redis://...) y verifica la
// conexión con un ping.
func NewCache(ctx context.Context, url string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis url inválida: %w", err)
	}

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Cache{rdb: rdb, ttl: ttl}, nil
}

// Get devuelve el valor cacheado y true si la clave existe.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return val, true, nil
}

// Set guarda el valor con el TTL configurado.
func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.rdb.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// InvalidatePrefix borra todas las claves que empiecen con el prefijo dado.
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) error {
	keys, err := c.rdb.Keys(ctx, prefix+"*").Result()
	if err != nil {
		return fmt.Errorf("cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache del: %w", err)
	}
	return nil
}

// Close cierra la conexión con Redis.
func (c *Cache) Close() error {
	return c.rdb.Close()
}
