// Package storage provides the durable key-value substrate workouts are persisted through.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/misterclayt0n/mapty/internal/config"
)

var (
	// ErrNotFound is returned by Get when the key holds no value.
	ErrNotFound = errors.New("key not found")
	// ErrQuotaExceeded is returned when a value does not fit the backend.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	// ErrUnavailable is returned by a backend that refuses all writes.
	ErrUnavailable = errors.New("storage unavailable")
)

// KeyValueStorage stores text values under string keys.
type KeyValueStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	Close() error
}

// Open builds the backend named in cfg.
func Open(ctx context.Context, cfg config.StorageConfig) (KeyValueStorage, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemory(cfg.MemoryBytes), nil
	case "file", "":
		return NewFile(cfg.Dir)
	case "sqlite":
		return NewSQL(ctx, DriverSQLite, cfg.URL)
	case "libsql":
		return NewSQL(ctx, DriverLibSQL, cfg.URL)
	case "redis":
		return NewRedis(ctx, cfg.URL, cfg.KeyPrefix)
	case "disabled":
		return Disabled{}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Disabled models storage turned off by policy: reads find nothing and writes fail.
type Disabled struct{}

func (Disabled) Get(context.Context, string) (string, error) { return "", ErrNotFound }
func (Disabled) Set(context.Context, string, string) error { return ErrUnavailable }
func (Disabled) Remove(context.Context, string) error { return nil }
func (Disabled) Close() error { return nil }
