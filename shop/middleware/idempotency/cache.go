package idempotency

import (
	"context"
	"time"

	"encore.dev/storage/cache"

	"storefront/shop/model"
)

// RecordCluster is the cache cluster holding idempotency records
var RecordCluster = cache.NewCluster("shop-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// RecordCache is the keyspace of idempotency records, one per path and key
var RecordCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyRecord](
	RecordCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)

// recordStore is the subset of the keyspace the middleware needs.
type recordStore interface {
	Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyRecord, error)
	Set(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyRecord) error
	SetIfNotExists(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyRecord) error
	Delete(ctx context.Context, keys ...model.IdempotencyKey) (int, error)
}

var records recordStore = RecordCache
