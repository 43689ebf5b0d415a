package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"encore.dev/rlog"
)

// GetOrCompute returns the value cached under key, or computes, stores and
// returns it on a miss. Values are stored as JSON.
//
// Concurrent misses on the same key share one compute call, which keeps
// running if the caller that started it is cancelled. A miss that begins after
// the key was invalidated never joins a call started before it, and such an
// older call does not store its result. Compute errors are returned and
// nothing is stored.
func GetOrCompute[T any](ctx context.Context, c *Cache, key string, compute func(ctx context.Context) (T, error)) (T, error) {
	if c.Has(key) {
		if raw, err := c.Get(key); err == nil {
			var cached T
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				CacheOps.With(opLabels{Op: "hit"}).Increment()
				return cached, nil
			}
			rlog.Warn("discarding undecodable cache entry", "key", key)
		}
	}

	CacheOps.With(opLabels{Op: "miss"}).Increment()

	v, err, _ := c.calls.Do(key, func() (any, error) {
		gen := c.generation(key)

		// Shared by every caller waiting on key, so one caller going away
		// must not fail the others.
		value, err := compute(context.WithoutCancel(ctx))
		if err != nil {
			return value, err
		}

		raw, err := json.Marshal(value)
		if err != nil {
			return value, fmt.Errorf("encode cache entry %s: %w", key, err)
		}
		if !c.setIfCurrent(key, string(raw), gen) {
			rlog.Debug("dropping result computed before invalidation", "key", key)
		}

		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.(T), nil
}
