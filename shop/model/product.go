package model

import (
	"time"
)

type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Photo     string    `json:"photo"`
	Price     int64     `json:"price"`
	Stock     int64     `json:"stock"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Product) GetCreatedAt() time.Time {
	return p.CreatedAt
}

// ProductUpdate carries the fields of a partial product update. Nil fields are
// left unchanged.
type ProductUpdate struct {
	Name     *string
	Photo    *string
	Price    *int64
	Stock    *int64
	Category *string
}

// ProductSearch filters the paginated product listing.
type ProductSearch struct {
	Search   string
	Category string
	MaxPrice int64
	Sort     string
	Page     int
	PageSize int
}

// SortPriceAsc orders search results by ascending price. Any other non-empty
// sort value orders by descending price.
const SortPriceAsc = "asc"
