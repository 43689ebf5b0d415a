package shop

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"storefront/shop/model"
	"storefront/shop/workflow"
)

type PlaceOrderRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	UserID          string             `json:"user_id" validate:"required"`
	ShippingInfo    model.ShippingInfo `json:"shipping_info"`
	OrderItems      []model.OrderItem  `json:"order_items" validate:"required,min=1,dive"`
	Subtotal        int64              `json:"subtotal" validate:"min=0"`
	Tax             int64              `json:"tax" validate:"min=0"`
	ShippingCharges int64              `json:"shipping_charges" validate:"min=0"`
	Discount        int64              `json:"discount" validate:"min=0"`
	Total           int64              `json:"total" validate:"required,min=1"`
}

type MyOrdersRequest struct {
	UserID string `query:"id"`
}

type OrderResponse struct {
	Order model.Order `json:"order"`
}

type OrdersResponse struct {
	Orders []model.Order `json:"orders"`
}

//encore:api public path=/v1/orders method=POST tag:idempotency
func (s *Service) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*OrderResponse, error) {
	result, err := s.orders.PlaceOrder(ctx, &model.Order{
		UserID:          req.UserID,
		ShippingInfo:    req.ShippingInfo,
		OrderItems:      req.OrderItems,
		Subtotal:        req.Subtotal,
		Tax:             req.Tax,
		ShippingCharges: req.ShippingCharges,
		Discount:        req.Discount,
		Total:           req.Total,
	})
	if err != nil {
		rlog.Error("failed to place order", "error", err, "user_id", req.UserID)
		return nil, err
	}

	// The order is committed; a missing workflow only means it will be
	// processed by hand.
	if wfErr := s.startFulfilmentWorkflow(ctx, result.ID); wfErr != nil {
		rlog.Error("workflow start issue", "order_id", result.ID, "workflow_id", workflow.WorkflowID(result.ID), "error", wfErr)
	}

	return &OrderResponse{Order: *result}, nil
}

//encore:api public path=/v1/orders/mine method=GET
func (s *Service) ListMyOrders(ctx context.Context, req *MyOrdersRequest) (*OrdersResponse, error) {
	result, err := s.orders.ListUserOrders(ctx, req.UserID)
	if err != nil {
		rlog.Error("failed to list user orders", "error", err, "user_id", req.UserID)
		return nil, err
	}
	return &OrdersResponse{Orders: result}, nil
}

//encore:api public path=/v1/orders method=GET
func (s *Service) ListOrders(ctx context.Context, req *AdminRequest) (*OrdersResponse, error) {
	if err := s.requireAdmin(ctx, req.AdminID); err != nil {
		return nil, err
	}

	result, err := s.orders.ListOrders(ctx)
	if err != nil {
		rlog.Error("failed to list orders", "error", err)
		return nil, err
	}
	return &OrdersResponse{Orders: result}, nil
}

//encore:api public path=/v1/orders/:id method=GET
func (s *Service) GetOrder(ctx context.Context, id string) (*OrderResponse, error) {
	result, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		rlog.Error("failed to get order", "error", err, "id", id)
		return nil, err
	}
	return &OrderResponse{Order: *result}, nil
}

//encore:api public path=/v1/orders/:id/process method=PUT
func (s *Service) ProcessOrder(ctx context.Context, id string, req *AdminRequest) (*OrderResponse, error) {
	if err := s.requireAdmin(ctx, req.AdminID); err != nil {
		return nil, err
	}

	result, err := s.orders.ProcessOrder(ctx, id)
	if err != nil {
		rlog.Error("failed to process order", "error", err, "id", id)
		return nil, err
	}
	return &OrderResponse{Order: *result}, nil
}

//encore:api public path=/v1/orders/:id method=DELETE
func (s *Service) DeleteOrder(ctx context.Context, id string, req *AdminRequest) error {
	if err := s.requireAdmin(ctx, req.AdminID); err != nil {
		return err
	}

	deleted, err := s.orders.DeleteOrder(ctx, id)
	if err != nil {
		rlog.Error("failed to delete order", "error", err, "id", id)
		return err
	}

	runAsync("cancel_order_workflow", func(ctx context.Context) error {
		return s.signalCancelOrder(ctx, deleted.ID, req.AdminID)
	})

	return nil
}

func (r *PlaceOrderRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}

func (r *MyOrdersRequest) Validate() error {
	if r.UserID == "" {
		return &errs.Error{Code: errs.Unauthenticated, Message: "login required"}
	}
	return nil
}

// startFulfilmentWorkflow starts the workflow that ships and delivers the order
func (s *Service) startFulfilmentWorkflow(ctx context.Context, orderID string) error {
	workflowID := workflow.WorkflowID(orderID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: s.taskQueue,
	}

	params := workflow.OrderFulfilmentParams{
		OrderID:      orderID,
		ShipAfter:    s.shipAfter,
		DeliverAfter: s.deliverAfter,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.OrderFulfilment, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "order_id", orderID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}

func (s *Service) signalCancelOrder(ctx context.Context, orderID, cancelledBy string) error {
	signal := workflow.CancelOrderSignal{
		Reason:      "order deleted",
		CancelledBy: cancelledBy,
	}

	return s.temporal.SignalWorkflow(ctx, workflow.WorkflowID(orderID), "", workflow.CancelOrderSignalName, signal)
}
