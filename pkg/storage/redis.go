package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKV implementa KeyValue sobre o Redis
type RedisKV struct {
	rdb    redis.Cmdable
	prefix string
}

// NewRedisKV cria uma nova instância de RedisKV. prefix é prefixado em todas as chaves.
func NewRedisKV(rdb redis.Cmdable, prefix string) *RedisKV {
	return &RedisKV{rdb: rdb, prefix: prefix}
}

// Get busca o valor da chave
func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.rdb.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("erro ao buscar chave %s no redis: %w", key, err)
	}
	return value, true, nil
}

// Set grava o valor da chave sem expiração
func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("erro ao gravar chave %s no redis: %w", key, err)
	}
	return nil
}

// Delete remove a chave
func (r *RedisKV) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("erro ao remover chave %s no redis: %w", key, err)
	}
	return nil
}
