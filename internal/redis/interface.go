package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so storage code depends on this
// package rather than on go-redis directly.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of a missing key.
const Nil = redis.Nil
