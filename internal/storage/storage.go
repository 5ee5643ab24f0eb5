// Package storage is the persistence port behind the session and meal stores:
// durable key-value records addressed by a namespace, one record per store.
package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/Varun5711/mealcounter/internal/config"
)

var ErrInvalidNamespace = errors.New("namespace may only contain letters, numbers, dots, hyphens, and underscores")

type Storage interface {
	// Get returns the record stored under namespace. found is false when
	// nothing was ever written or the record was removed.
	Get(ctx context.Context, namespace string) (value []byte, found bool, err error)
	Set(ctx context.Context, namespace string, value []byte) error
	Remove(ctx context.Context, namespace string) error
	Close() error
}

var namespaceRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

func validateNamespace(namespace string) error {
	if !namespaceRegex.MatchString(namespace) || namespace == "." || namespace == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidNamespace, namespace)
	}
	return nil
}

// Open builds the adapter selected by cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return NewMemory(), nil
	case config.StorageFile:
		return NewFile(cfg.Storage.Dir)
	case config.StorageRedis:
		return NewRedis(ctx, RedisConfig{
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			KeyPrefix:  cfg.Redis.KeyPrefix,
			L1Capacity: cfg.Cache.L1Capacity,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
