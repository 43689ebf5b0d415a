package model

import (
	"time"
)

type Order struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id"`
	UserName        string       `json:"user_name,omitempty"`
	ShippingInfo    ShippingInfo `json:"shipping_info"`
	OrderItems      []OrderItem  `json:"order_items"`
	Subtotal        int64        `json:"subtotal"`
	Tax             int64        `json:"tax"`
	ShippingCharges int64        `json:"shipping_charges"`
	Discount        int64        `json:"discount"`
	Total           int64        `json:"total"`
	Status          OrderStatus  `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func (o Order) GetCreatedAt() time.Time {
	return o.CreatedAt
}

type ShippingInfo struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
	PinCode int64  `json:"pin_code" validate:"required"`
}

type OrderItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Name      string `json:"name"`
	Photo     string `json:"photo"`
	Price     int64  `json:"price" validate:"min=0"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// Next returns the status an order moves to when it is processed.
// Delivered is terminal and maps to itself.
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case OrderStatusProcessing:
		return OrderStatusShipped
	default:
		return OrderStatusDelivered
	}
}
