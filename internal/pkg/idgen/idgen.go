// Package idgen provides ID generation utilities
package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/KirkDiggler/npc-tracker/internal/errors"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// Scheme names an ID generation strategy selectable from configuration
type Scheme string

// Supported schemes
const (
	SchemeUUID      Scheme = "uuid"
	SchemeTimestamp Scheme = "timestamp"
)

// New returns the generator for scheme. An empty scheme selects UUIDs.
func New(scheme Scheme) (Generator, error) {
	switch scheme {
	case "", SchemeUUID:
		return NewUUID(""), nil
	case SchemeTimestamp:
		return &SimpleGenerator{}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown id scheme %q", scheme)
	}
}

const (
	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLength   = 9
)

// SimpleGenerator generates IDs from the millisecond timestamp followed by
// a random base36 suffix. Collisions are not checked.
type SimpleGenerator struct{}

// Generate creates a new ID with timestamp and random suffix
func (g *SimpleGenerator) Generate() string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)

	suffix := make([]byte, suffixLength)
	limit := big.NewInt(int64(len(base36Alphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand should never fail on a properly configured system
			panic(fmt.Sprintf("crypto/rand failed: %v", err))
		}
		suffix[i] = base36Alphabet[n.Int64()]
	}

	return timestamp + string(suffix)
}

// SequentialGenerator generates sequential IDs for testing
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// UUIDGenerator generates UUIDs with optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}
