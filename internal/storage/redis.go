package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Varun5711/mealcounter/internal/cache"
)

type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	KeyPrefix  string
	L1Capacity int
}

// Redis keeps records in Redis without expiry, with an in-process LRU in
// front for reads. The LRU is only filled after Redis accepted a write.
type Redis struct {
	client    *redis.Client
	keyPrefix string
	l1        *cache.LRU[string, []byte]
}

func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     4,
		MinIdleConns: 1,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisWithClient(rdb, cfg.KeyPrefix, cfg.L1Capacity), nil
}

// NewRedisWithClient wraps an existing client; Close closes it.
func NewRedisWithClient(client *redis.Client, keyPrefix string, l1Capacity int) *Redis {
	return &Redis{
		client:    client,
		keyPrefix: keyPrefix,
		l1:        cache.NewLRU[string, []byte](l1Capacity),
	}
}

func (s *Redis) key(namespace string) string {
	return s.keyPrefix + namespace
}

func (s *Redis) Get(ctx context.Context, namespace string) ([]byte, bool, error) {
	if err := validateNamespace(namespace); err != nil {
		return nil, false, err
	}

	if val, found := s.l1.Get(namespace); found {
		return clone(val), true, nil
	}

	val, err := s.client.Get(ctx, s.key(namespace)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", namespace, err)
	}

	s.l1.Set(namespace, clone(val))
	return val, true, nil
}

func (s *Redis) Set(ctx context.Context, namespace string, value []byte) error {
	if err := validateNamespace(namespace); err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.key(namespace), value, 0).Err(); err != nil {
		s.l1.Delete(namespace)
		return fmt.Errorf("redis set %s: %w", namespace, err)
	}

	s.l1.Set(namespace, clone(value))
	return nil
}

func (s *Redis) Remove(ctx context.Context, namespace string) error {
	if err := validateNamespace(namespace); err != nil {
		return err
	}

	s.l1.Delete(namespace)
	if err := s.client.Del(ctx, s.key(namespace)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", namespace, err)
	}
	return nil
}

func (s *Redis) Close() error {
	return s.client.Close()
}
