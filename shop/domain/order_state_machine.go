package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"storefront/shop/repository/orders"
	"storefront/shop/repository/products"
)

// Tx exposes the repositories bound to one open transaction.
type Tx struct {
	Orders   orders.Querier
	Products products.Querier
}

// StateMachine defines the interface for order state transitions and transaction management
type StateMachine interface {
	// RunInTx executes fn inside a single transaction. Returning an error rolls it back.
	RunInTx(ctx context.Context, fn func(tx Tx) error) error

	// GetOrderWithLock locks the order row for the duration of fn
	GetOrderWithLock(ctx context.Context, orderID string, fn func(tx Tx, current orders.Order) error) error
}

// OrderStateMachine owns the transaction boundary for writes that touch
// several rows: placing an order with its stock changes and moving an order
// along Processing, Shipped, Delivered.
type OrderStateMachine struct {
	db       *pgxpool.Pool
	orders   *orders.Queries
	products *products.Queries
}

// NewOrderStateMachine creates a new order state machine with database and repository access
func NewOrderStateMachine(db *pgxpool.Pool) *OrderStateMachine {
	return &OrderStateMachine{
		db:       db,
		orders:   orders.New(db),
		products: products.New(db),
	}
}

func (sm *OrderStateMachine) RunInTx(ctx context.Context, fn func(tx Tx) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	err = fn(Tx{
		Orders:   sm.orders.WithTx(tx),
		Products: sm.products.WithTx(tx),
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit transaction"}
	}

	return nil
}

func (sm *OrderStateMachine) GetOrderWithLock(ctx context.Context, orderID string, fn func(tx Tx, current orders.Order) error) error {
	return sm.RunInTx(ctx, func(tx Tx) error {
		// SELECT ... FOR UPDATE, the row stays locked until commit or rollback
		current, err := tx.Orders.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "order not found"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to lock order for state transition"}
		}

		return fn(tx, current)
	})
}
