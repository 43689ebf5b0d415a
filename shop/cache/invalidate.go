package cache

import (
	"encore.dev/rlog"
)

// Event describes a committed write. Each flag selects a family of keys that
// may now be stale; the ids narrow the per-entity keys of that family.
type Event struct {
	Product bool
	Order   bool
	Admin   bool

	UserID     string
	OrderID    string
	ProductIDs []string
}

// Keys returns every cache key made stale by the event.
//
// A missing UserID or OrderID still yields its templated key ("my-orders-",
// "order-"), which is simply never set, so deleting it is a no-op.
func (ev Event) Keys() []string {
	var keys []string

	if ev.Product {
		keys = append(keys, LatestProductsKey, CategoriesKey, AllProductsKey)
		for _, id := range ev.ProductIDs {
			keys = append(keys, ProductKey(id))
		}
	}

	if ev.Order {
		keys = append(keys, AllOrdersKey, UserOrdersKey(ev.UserID), OrderKey(ev.OrderID))
	}

	if ev.Admin {
		keys = append(keys, AdminStatsKey, AdminPieChartsKey, AdminBarChartsKey, AdminLineChartKey)
	}

	return keys
}

// Invalidate deletes every key made stale by ev. It must be called after the
// write has committed, never before.
func (c *Cache) Invalidate(ev Event) {
	keys := ev.Keys()
	if len(keys) == 0 {
		return
	}

	c.Delete(keys...)
	CacheOps.With(opLabels{Op: "invalidate"}).Add(uint64(len(keys)))
	rlog.Debug("cache invalidated", "keys", keys)
}
