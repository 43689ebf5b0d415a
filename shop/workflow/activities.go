package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"

	"storefront/shop/business/order"
	"storefront/shop/model"
)

// OrderNotFoundErrorType marks an advance attempt on an order that no longer exists.
const OrderNotFoundErrorType = "ORDER_NOT_FOUND"

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	OrderBusiness order.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(orderBusiness order.Business) {
	activityDeps = &ActivityDependencies{
		OrderBusiness: orderBusiness,
	}
}

// AdvanceOrderActivity moves an order one status forward if it is still in
// status from. It reports whether the order moved.
func AdvanceOrderActivity(ctx context.Context, orderID string, from model.OrderStatus) (bool, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing advance order activity", "orderID", orderID, "from", from)

	if activityDeps == nil || activityDeps.OrderBusiness == nil {
		logger.Error("Activity dependencies not set")
		return false, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	advanced, err := activityDeps.OrderBusiness.AdvanceOrder(ctx, orderID, from)
	if err != nil {
		if errs.Code(err) == errs.NotFound {
			logger.Warn("Order no longer exists", "orderID", orderID)
			return false, temporal.NewNonRetryableApplicationError("order not found", OrderNotFoundErrorType, err)
		}
		logger.Error("Failed to advance order", "orderID", orderID, "error", err)
		return false, err
	}

	if advanced {
		logger.Info("Successfully advanced order", "orderID", orderID, "from", from, "to", from.Next())
	} else {
		logger.Info("Order already left status, nothing to do", "orderID", orderID, "from", from)
	}
	return advanced, nil
}
