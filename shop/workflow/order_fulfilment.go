package workflow

import (
	"errors"
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"storefront/shop/model"
)

// OrderFulfilmentParams contains parameters for starting the fulfilment workflow
type OrderFulfilmentParams struct {
	OrderID      string        `json:"order_id"`
	ShipAfter    time.Duration `json:"ship_after"`
	DeliverAfter time.Duration `json:"deliver_after"`
}

// WorkflowID is the id of the fulfilment workflow of one order.
func WorkflowID(orderID string) string {
	return fmt.Sprintf("order-%s", orderID)
}

type fulfilmentStage struct {
	wait time.Duration
	from model.OrderStatus
}

// OrderFulfilment ships an order ShipAfter after it was placed and delivers
// it DeliverAfter later. A stage is skipped if the order was already moved on
// by hand. A cancel-order signal ends the workflow.
func OrderFulfilment(ctx workflow.Context, params OrderFulfilmentParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting order fulfilment workflow", "orderID", params.OrderID, "shipAfter", params.ShipAfter, "deliverAfter", params.DeliverAfter)

	cancelCh := workflow.GetSignalChannel(ctx, CancelOrderSignalName)

	stages := []fulfilmentStage{
		{wait: params.ShipAfter, from: model.OrderStatusProcessing},
		{wait: params.DeliverAfter, from: model.OrderStatusShipped},
	}

	for _, stage := range stages {
		timerCtx, cancelTimer := workflow.WithCancel(ctx)
		timer := workflow.NewTimer(timerCtx, stage.wait)

		cancelled := false
		selector := workflow.NewSelector(ctx)
		selector.AddReceive(cancelCh, func(c workflow.ReceiveChannel, more bool) {
			var signal CancelOrderSignal
			c.Receive(ctx, &signal)
			logger.Info("Received cancel order signal", "orderID", params.OrderID, "reason", signal.Reason)
			cancelled = true
		})
		selector.AddFuture(timer, func(f workflow.Future) {})
		selector.Select(ctx)

		if cancelled {
			cancelTimer()
			logger.Info("Order fulfilment cancelled", "orderID", params.OrderID)
			return nil
		}

		err := advanceOrder(ctx, params.OrderID, stage.from)
		if err != nil {
			var appErr *temporal.ApplicationError
			if errors.As(err, &appErr) && appErr.Type() == OrderNotFoundErrorType {
				logger.Info("Order deleted, ending fulfilment", "orderID", params.OrderID)
				return nil
			}
			logger.Error("Failed to advance order", "orderID", params.OrderID, "from", stage.from, "error", err)
			return err
		}
	}

	logger.Info("Order fulfilment workflow completed", "orderID", params.OrderID)
	return nil
}

// advanceOrder executes the AdvanceOrder activity
func advanceOrder(ctx workflow.Context, orderID string, from model.OrderStatus) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var advanced bool
	return workflow.ExecuteActivity(activityCtx, AdvanceOrderActivity, orderID, from).Get(ctx, &advanced)
}
