package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	c := New()

	assert.False(t, c.Has("k"))
	_, err := c.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)

	c.Set("k", `{"a":1}`)
	assert.True(t, c.Has("k"))
	v, err := c.Get("k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, v)

	c.Set("k", "overwritten")
	v, err = c.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "overwritten", v)

	c.Delete("k")
	assert.False(t, c.Has("k"))
	_, err = c.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCacheDeleteIgnoresAbsentKeys(t *testing.T) {
	c := New()
	c.Set("a", "1")
	c.Set("b", "2")

	c.Delete("a", "missing", "also-missing")

	assert.False(t, c.Has("a"))
	assert.True(t, c.Has("b"))
	assert.Equal(t, 1, c.Len())

	c.Delete()
	c.Delete("a")
	assert.Equal(t, 1, c.Len())
}

func TestCacheInstancesAreIsolated(t *testing.T) {
	first, second := New(), New()
	first.Set(AdminStatsKey, "{}")

	assert.True(t, first.Has(AdminStatsKey))
	assert.False(t, second.Has(AdminStatsKey))
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := ProductKey(string(rune('a' + i%26)))
			c.Set(key, "v")
			_ = c.Has(key)
			_, _ = c.Get(key)
			if i%3 == 0 {
				c.Delete(key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 26)
}

func TestGetOrCompute(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	t.Run("miss_computes_and_stores", func(t *testing.T) {
		c := New()
		calls := 0

		got, err := GetOrCompute(context.Background(), c, AllProductsKey, func(ctx context.Context) (payload, error) {
			calls++
			return payload{Name: "laptop", Count: 3}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, payload{Name: "laptop", Count: 3}, got)
		assert.Equal(t, 1, calls)

		raw, err := c.Get(AllProductsKey)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"laptop","count":3}`, raw)
	})

	t.Run("hit_skips_compute", func(t *testing.T) {
		c := New()
		c.Set(AllProductsKey, `{"name":"cached","count":7}`)

		got, err := GetOrCompute(context.Background(), c, AllProductsKey, func(ctx context.Context) (payload, error) {
			t.Fatal("compute must not run on a hit")
			return payload{}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, payload{Name: "cached", Count: 7}, got)
	})

	t.Run("compute_error_is_not_cached", func(t *testing.T) {
		c := New()
		boom := errors.New("store unavailable")

		_, err := GetOrCompute(context.Background(), c, AllOrdersKey, func(ctx context.Context) (payload, error) {
			return payload{}, boom
		})
		assert.ErrorIs(t, err, boom)
		assert.False(t, c.Has(AllOrdersKey))
	})

	t.Run("undecodable_entry_is_recomputed", func(t *testing.T) {
		c := New()
		c.Set(CategoriesKey, "not json")

		got, err := GetOrCompute(context.Background(), c, CategoriesKey, func(ctx context.Context) ([]string, error) {
			return []string{"laptop", "phone"}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"laptop", "phone"}, got)

		raw, err := c.Get(CategoriesKey)
		require.NoError(t, err)
		assert.JSONEq(t, `["laptop","phone"]`, raw)
	})

	t.Run("invalidation_forces_recompute", func(t *testing.T) {
		c := New()
		var calls atomic.Int32
		compute := func(ctx context.Context) (int, error) {
			return int(calls.Add(1)), nil
		}

		first, err := GetOrCompute(context.Background(), c, AdminStatsKey, compute)
		require.NoError(t, err)
		second, err := GetOrCompute(context.Background(), c, AdminStatsKey, compute)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		c.Invalidate(Event{Admin: true})

		third, err := GetOrCompute(context.Background(), c, AdminStatsKey, compute)
		require.NoError(t, err)
		assert.Equal(t, 2, third)
	})
}

func TestGetOrComputeConcurrentMisses(t *testing.T) {
	t.Run("misses_share_one_compute", func(t *testing.T) {
		c := New()
		var calls atomic.Int32
		release := make(chan struct{})
		started := make(chan struct{})

		compute := func(ctx context.Context) (string, error) {
			if calls.Add(1) == 1 {
				close(started)
			}
			<-release
			return "snapshot", nil
		}

		const readers = 8
		results := make([]string, readers)
		errs := make([]error, readers)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[0], errs[0] = GetOrCompute(context.Background(), c, AdminStatsKey, compute)
		}()
		<-started

		for i := 1; i < readers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = GetOrCompute(context.Background(), c, AdminStatsKey, compute)
			}(i)
		}
		// Let the other readers reach the in-flight call.
		time.Sleep(100 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
		for i := 0; i < readers; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, "snapshot", results[i])
		}
	})

	t.Run("first_caller_cancelled_others_succeed", func(t *testing.T) {
		c := New()
		release := make(chan struct{})
		started := make(chan struct{})

		compute := func(ctx context.Context) (int, error) {
			close(started)
			<-release
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			return 42, nil
		}

		firstCtx, cancel := context.WithCancel(context.Background())
		var firstErr error
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, firstErr = GetOrCompute(firstCtx, c, AdminPieChartsKey, compute)
		}()
		<-started

		var second int
		var secondErr error
		go func() {
			defer wg.Done()
			second, secondErr = GetOrCompute(context.Background(), c, AdminPieChartsKey, compute)
		}()
		time.Sleep(100 * time.Millisecond)

		cancel()
		close(release)
		wg.Wait()

		assert.NoError(t, firstErr)
		require.NoError(t, secondErr)
		assert.Equal(t, 42, second)
		assert.True(t, c.Has(AdminPieChartsKey))
	})

	t.Run("read_after_invalidation_does_not_join_older_compute", func(t *testing.T) {
		c := New()
		release := make(chan struct{})
		started := make(chan struct{})

		var wg sync.WaitGroup
		wg.Add(1)
		var old string
		go func() {
			defer wg.Done()
			old, _ = GetOrCompute(context.Background(), c, AdminStatsKey, func(ctx context.Context) (string, error) {
				close(started)
				<-release
				return "before-write", nil
			})
		}()
		<-started

		c.Invalidate(Event{Admin: true})

		fresh, err := GetOrCompute(context.Background(), c, AdminStatsKey, func(ctx context.Context) (string, error) {
			return "after-write", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "after-write", fresh)

		close(release)
		wg.Wait()
		assert.Equal(t, "before-write", old)

		raw, err := c.Get(AdminStatsKey)
		require.NoError(t, err)
		assert.JSONEq(t, `"after-write"`, raw)
	})

	t.Run("older_compute_not_stored_after_invalidation", func(t *testing.T) {
		c := New()
		release := make(chan struct{})
		started := make(chan struct{})

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = GetOrCompute(context.Background(), c, AllOrdersKey, func(ctx context.Context) (string, error) {
				close(started)
				<-release
				return "stale", nil
			})
		}()
		<-started

		c.Invalidate(Event{Order: true, UserID: "u1", OrderID: "o1"})
		close(release)
		<-done

		assert.False(t, c.Has(AllOrdersKey))
	})
}
