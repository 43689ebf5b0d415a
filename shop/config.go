package shop

import (
	"time"

	"encore.dev/config"
)

type TemporalConfig struct {
	HostPort  string
	Namespace string
	TaskQueue string
}

type FulfilmentConfig struct {
	// Hours after placement before a Processing order is shipped
	ShipAfterHours int
	// Hours after shipping before a Shipped order is delivered
	DeliverAfterHours int
}

type Config struct {
	ProductPageSize     int
	LatestProductsLimit int

	Temporal   TemporalConfig
	Fulfilment FulfilmentConfig
}

var cfg = config.Load[*Config]()

func (c FulfilmentConfig) ShipAfter() time.Duration {
	return time.Duration(c.ShipAfterHours) * time.Hour
}

func (c FulfilmentConfig) DeliverAfter() time.Duration {
	return time.Duration(c.DeliverAfterHours) * time.Hour
}
