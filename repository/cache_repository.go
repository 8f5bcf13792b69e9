package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// CacheRepository stores generated advisory text.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

const keyPrefix = "loan-optimizer:advice:"

// CacheKey builds a stable key for a prompt of the given kind.
func CacheKey(kind, prompt string) string {
	return keyPrefix + kind + ":" + strconv.FormatUint(xxhash.Sum64String(prompt), 16)
}
