package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"storefront/shop/cache"
	"storefront/shop/domain"
	"storefront/shop/model"
	"storefront/shop/repository/orders"
	"storefront/shop/repository/products"
)

// PlaceOrder stores the order and takes the ordered quantities out of stock
// in one transaction. Stock never drops below zero.
func (b *business) PlaceOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	if len(order.OrderItems) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "order has no items"}
	}

	shippingInfo, err := json.Marshal(order.ShippingInfo)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid shipping info"}
	}
	orderItems, err := json.Marshal(order.OrderItems)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid order items"}
	}

	var dbOrder orders.Order
	err = b.stateMachine.RunInTx(ctx, func(tx domain.Tx) error {
		var err error
		dbOrder, err = tx.Orders.CreateOrder(ctx, orders.CreateOrderParams{
			ID:              uuid.NewString(),
			UserID:          order.UserID,
			ShippingInfo:    shippingInfo,
			OrderItems:      orderItems,
			Subtotal:        order.Subtotal,
			Tax:             order.Tax,
			ShippingCharges: order.ShippingCharges,
			Discount:        order.Discount,
			Total:           order.Total,
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to create order"}
		}

		for _, item := range order.OrderItems {
			_, err := tx.Products.ReduceStock(ctx, products.ReduceStockParams{
				ID:       item.ProductID,
				Quantity: item.Quantity,
			})
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return &errs.Error{Code: errs.NotFound, Message: "product not found: " + item.ProductID}
				}
				return &errs.Error{Code: errs.Internal, Message: "failed to reduce stock"}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	productIDs := make([]string, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		productIDs = append(productIDs, item.ProductID)
	}
	b.cache.Invalidate(cache.Event{
		Product:    true,
		Order:      true,
		Admin:      true,
		UserID:     order.UserID,
		OrderID:    dbOrder.ID,
		ProductIDs: productIDs,
	})

	placed, err := convertDBOrderToModel(dbOrder, "")
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to decode order"}
	}
	return &placed, nil
}
