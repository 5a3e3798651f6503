// Package kv provides the durable key-value store the library is persisted to
package kv

//go:generate mockgen -destination=mock/mock_repository.go -package=kvmock github.com/KirkDiggler/npc-tracker/internal/repositories/kv Repository

import (
	"context"
)

// Backend names a Repository implementation
type Backend string

// Supported backends
const (
	BackendSQLite   Backend = "sqlite"
	BackendRedis    Backend = "redis"
	BackendInMemory Backend = "memory"
)

// Repository is a string-to-string store.
type Repository interface {
	// Get returns the value stored under key
	// Returns errors.InvalidArgument for an empty key
	// Returns errors.NotFound if the key has never been written
	// Returns errors.Unavailable or errors.Internal for storage failures
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value
	// Returns errors.InvalidArgument for an empty key
	// Returns errors.Unavailable or errors.Internal for storage failures
	Set(ctx context.Context, key, value string) error

	// Close releases the underlying connection
	Close() error
}
