package kv

import (
	"context"
	"sync"

	"github.com/KirkDiggler/npc-tracker/internal/errors"
)

const errKeyEmpty = "key cannot be empty"

// InMemoryRepository implements Repository using a map
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]string
}

// NewInMemory creates an empty in-memory store
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]string),
	}
}

// Get returns the value stored under key
func (r *InMemoryRepository) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.InvalidArgument(errKeyEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.store[key]
	if !ok {
		return "", errors.NotFoundf("key %s not found", key).WithMeta("key", key)
	}
	return value, nil
}

// Set stores value under key
func (r *InMemoryRepository) Set(_ context.Context, key, value string) error {
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[key] = value
	return nil
}

// Close is a no-op
func (r *InMemoryRepository) Close() error {
	return nil
}
