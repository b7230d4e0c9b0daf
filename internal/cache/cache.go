// Package cache is a TTL-based read-through cache for expensive aggregate
// queries. It is a performance layer only: every caller must behave
// correctly when the cache misses or is disabled.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Policy controls caching for one entity type. Result sets smaller than
// MinRecords are never cached; tiny sets are cheap to recompute and would
// churn the keyspace.
type Policy struct {
	Enabled    bool
	TTL        time.Duration
	MinRecords int
}

// Cache wraps Redis with per-entity-type policies.
type Cache struct {
	rdb      *redis.Client
	policies map[string]Policy
	logger   *slog.Logger
}

// New creates a cache over an established Redis client.
func New(rdb *redis.Client, policies map[string]Policy, logger *slog.Logger) *Cache {
	return &Cache{
		rdb:      rdb,
		policies: policies,
		logger:   logger,
	}
}

// Key builds a stable cache key from an entity type and a query-parameter
// mapping. Parameters are sorted by name before hashing so equivalent
// queries share a key regardless of map iteration order.
func Key(entityType string, params map[string]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(params[name])
		b.WriteByte('&')
	}

	sum := sha256.Sum256([]byte(b.String()))
	return fmt.Sprintf("%s:%s", entityType, hex.EncodeToString(sum[:]))
}

// Get loads a cached value into dest. It returns false on a miss and on any
// entity type whose policy is disabled.
func (c *Cache) Get(ctx context.Context, entityType string, params map[string]string, dest any) (bool, error) {
	policy, ok := c.policies[entityType]
	if !ok || !policy.Enabled {
		return false, nil
	}

	key := Key(entityType, params)
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		// A stale or incompatible payload is treated as a miss.
		c.logger.Warn("Discarding undecodable cache entry",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return false, nil
	}

	return true, nil
}

// Set stores a value when the entity's policy allows it and the result set
// is large enough to be worth caching.
func (c *Cache) Set(ctx context.Context, entityType string, params map[string]string, value any, recordCount int) error {
	if !c.shouldStore(entityType, recordCount) {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache value: %w", err)
	}

	policy := c.policies[entityType]
	key := Key(entityType, params)
	if err := c.rdb.Set(ctx, key, raw, policy.TTL).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}

	c.logger.Debug("Cache entry stored",
		slog.String("entity_type", entityType),
		slog.String("key", key),
		slog.Int("record_count", recordCount),
		slog.Duration("ttl", policy.TTL),
	)

	return nil
}

// shouldStore applies the per-entity enable flag and the minimum record
// count threshold.
func (c *Cache) shouldStore(entityType string, recordCount int) bool {
	policy, ok := c.policies[entityType]
	if !ok || !policy.Enabled {
		return false
	}
	return recordCount >= policy.MinRecords
}
