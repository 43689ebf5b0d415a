package order

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront/shop/cache"
	"storefront/shop/domain"
	"storefront/shop/model"
	"storefront/shop/repository/orders"
)

type Business interface {
	PlaceOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	ListUserOrders(ctx context.Context, userID string) ([]model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	ProcessOrder(ctx context.Context, id string) (*model.Order, error)
	AdvanceOrder(ctx context.Context, id string, from model.OrderStatus) (bool, error)
	DeleteOrder(ctx context.Context, id string) (*model.Order, error)
}

type business struct {
	orderRepo    orders.Querier
	stateMachine domain.StateMachine
	cache        *cache.Cache
}

// NewOrderBusiness creates a new order business layer
func NewOrderBusiness(orderRepo orders.Querier, stateMachine domain.StateMachine, c *cache.Cache) Business {
	return &business{
		orderRepo:    orderRepo,
		stateMachine: stateMachine,
		cache:        c,
	}
}

// convertDBOrderToModel converts a database Order to a domain model Order,
// decoding the JSONB shipping address and line items.
func convertDBOrderToModel(dbOrder orders.Order, userName string) (model.Order, error) {
	order := model.Order{
		ID:              dbOrder.ID,
		UserID:          dbOrder.UserID,
		UserName:        userName,
		Subtotal:        dbOrder.Subtotal,
		Tax:             dbOrder.Tax,
		ShippingCharges: dbOrder.ShippingCharges,
		Discount:        dbOrder.Discount,
		Total:           dbOrder.Total,
		Status:          model.OrderStatus(dbOrder.Status),
		CreatedAt:       dbOrder.CreatedAt.Time,
		UpdatedAt:       dbOrder.UpdatedAt.Time,
	}

	if len(dbOrder.ShippingInfo) > 0 {
		if err := json.Unmarshal(dbOrder.ShippingInfo, &order.ShippingInfo); err != nil {
			return model.Order{}, fmt.Errorf("decode shipping info of order %s: %w", dbOrder.ID, err)
		}
	}
	if len(dbOrder.OrderItems) > 0 {
		if err := json.Unmarshal(dbOrder.OrderItems, &order.OrderItems); err != nil {
			return model.Order{}, fmt.Errorf("decode items of order %s: %w", dbOrder.ID, err)
		}
	}

	return order, nil
}

func convertDBOrdersToModel(dbOrders []orders.Order) ([]model.Order, error) {
	result := make([]model.Order, 0, len(dbOrders))
	for _, o := range dbOrders {
		order, err := convertDBOrderToModel(o, "")
		if err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, nil
}
