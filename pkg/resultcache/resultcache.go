// Package resultcache memoizes whole evaluations with thundering herd
// prevention, for serving paths where the same handle is asked about
// repeatedly. Persistence is optional and off by default.
package resultcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/sfcache"
	"github.com/codeGROOVE-dev/sfcache/pkg/store/localfs"
	"github.com/codeGROOVE-dev/sfcache/pkg/store/null"

	"github.com/codeGROOVE-dev/handlecheck/pkg/handle"
)

// Evaluator runs one full evaluation. Implemented by *checker.Checker.
type Evaluator interface {
	Check(ctx context.Context, baseHandle string, platforms ...handle.Platform) (*handle.AggregateResult, error)
}

// Cache wraps sfcache for evaluation results.
type Cache struct {
	*sfcache.TieredCache[string, []byte]

	ttl time.Duration
}

// New creates a Cache with disk persistence at ~/.cache/handlecheck.
func New(ttl time.Duration) (*Cache, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return NewWithPath(ttl, filepath.Join(cacheDir, "handlecheck"))
}

// NewNull creates a Cache with no disk persistence.
func NewNull(ttl time.Duration) *Cache {
	tc, err := sfcache.NewTiered[string, []byte](null.New[string, []byte](), sfcache.TTL(ttl))
	if err != nil {
		panic("sfcache.NewTiered with null store: " + err.Error())
	}
	return &Cache{TieredCache: tc, ttl: ttl}
}

// NewWithPath creates a Cache with disk persistence at the specified path.
func NewWithPath(ttl time.Duration, cachePath string) (*Cache, error) {
	if err := os.MkdirAll(cachePath, 0o750); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	persist, err := localfs.New[string, []byte]("handlecheck", cachePath)
	if err != nil {
		return nil, fmt.Errorf("create persistence layer: %w", err)
	}

	tc, err := sfcache.NewTiered[string, []byte](persist, sfcache.TTL(ttl))
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}

	return &Cache{TieredCache: tc, ttl: ttl}, nil
}

// TTL returns the default TTL for cache entries.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Key derives a stable cache key for one evaluation request. Handles are
// case-insensitive.
func Key(baseHandle string, platforms []handle.Platform) string {
	parts := make([]string, 0, len(platforms)+1)
	parts = append(parts, strings.ToLower(baseHandle))
	for _, p := range platforms {
		parts = append(parts, p.String())
	}
	hash := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(hash[:])
}

// Check runs (or replays) one evaluation through the cache. Concurrent calls
// for the same key share a single underlying evaluation.
func (c *Cache) Check(ctx context.Context, ev Evaluator, baseHandle string, platforms ...handle.Platform) (*handle.AggregateResult, error) {
	data, err := c.GetSet(ctx, Key(baseHandle, platforms), func(ctx context.Context) ([]byte, error) {
		result, err := ev.Check(ctx, baseHandle, platforms...)
		if err != nil {
			return nil, err
		}
		return json.Marshal(result)
	}, c.ttl)
	if err != nil {
		return nil, err
	}

	var result handle.AggregateResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode cached result: %w", err)
	}
	return &result, nil
}
