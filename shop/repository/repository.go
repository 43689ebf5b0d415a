package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/shop/repository/coupons"
	"storefront/shop/repository/orders"
	"storefront/shop/repository/products"
	"storefront/shop/repository/users"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Products products.Querier
	Orders   orders.Querier
	Users    users.Querier
	Coupons  coupons.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Products: products.New(db),
		Orders:   orders.New(db),
		Users:    users.New(db),
		Coupons:  coupons.New(db),
	}
}
