package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
)

// Memory keeps values in a fixed size freecache. A single value may use at
// most 1/1024 of the capacity, larger writes fail with ErrQuotaExceeded.
type Memory struct {
	cache *freecache.Cache
}

func NewMemory(capacityBytes int) *Memory {
	return &Memory{cache: freecache.NewCache(capacityBytes)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	value, err := m.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return string(value), nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	if err := m.cache.Set([]byte(key), []byte(value), 0); err != nil {
		if errors.Is(err, freecache.ErrLargeEntry) || errors.Is(err, freecache.ErrLargeKey) {
			return fmt.Errorf("%w: %d bytes under %s", ErrQuotaExceeded, len(value), key)
		}
		return err
	}
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.cache.Del([]byte(key))
	return nil
}

func (m *Memory) Close() error {
	m.cache.Clear()
	return nil
}
