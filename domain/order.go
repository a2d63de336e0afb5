package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "Placed"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusReady     OrderStatus = "Ready"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"

	// OrderSequenceName is the counter family used for daily order numbers.
	OrderSequenceName = "orderNumber"
)

var orderStatuses = []OrderStatus{
	OrderStatusPlaced,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ParseOrderStatus is case-sensitive, matching the stored values exactly.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range orderStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

func AllowedStatusesText() string {
	names := make([]string, 0, len(orderStatuses))
	for _, st := range orderStatuses {
		names = append(names, string(st))
	}
	return strings.Join(names, ", ")
}

var (
	MessageSuccessPlaceOrder        = "Order placed successfully!"
	MessageSuccessGetOrder          = "order retrieved successfully"
	MessageSuccessGetOrders         = "orders retrieved successfully"
	MessageSuccessUpdateOrderStatus = "order status updated"
	MessageOrderStatusNotChanged    = "Order status was not changed (it might already be the requested status)"
	MessageFailedPlaceOrder         = "Failed to place order"
	MessageFailedGetOrder           = "Failed to fetch order details"
	MessageFailedGetOrders          = "Failed to fetch orders"
	MessageFailedUpdateOrderStatus  = "Failed to update order status"
	MessageInvalidOrderData         = "Missing or invalid order data"
	MessageInvalidOrderID           = "Invalid Order ID format"
	MessageOrderNotFound            = "Order not found"
	MessageUserNotAuthenticated     = "User not authenticated"
	MessageDuplicateOrderSubmission = "Order with this idempotency key was already submitted"
	MessageInvalidStatusPrefix      = "Invalid status provided. Allowed statuses are: "

	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrInvalidOrderData    = errors.New("missing or invalid order data")
	ErrTotalAmountMismatch = errors.New("total amount does not match order items")
	ErrDuplicateOrder      = errors.New("duplicate order submission")
	ErrMissingUserID       = errors.New("user id is required")
)

type (
	CartItemRequest struct {
		ID       string          `json:"_id"`
		Name     string          `json:"name" validate:"required"`
		Quantity int             `json:"quantity" validate:"required,min=1"`
		Price    decimal.Decimal `json:"price" validate:"gte=0"`
		ImageSrc string          `json:"imageSrc"`
		Category string          `json:"category"`
	}

	CreateOrderRequest struct {
		UserID      string            `json:"userId" validate:"required"`
		CartItems   []CartItemRequest `json:"cartItems" validate:"required,min=1,dive"`
		TotalAmount *decimal.Decimal  `json:"totalAmount"`
	}

	CreateOrderResponse struct {
		OrderID          string `json:"orderId"`
		DailyOrderNumber int64  `json:"dailyOrderNumber"`
	}

	OrderItemResponse struct {
		ItemID   string          `json:"itemId"`
		Name     string          `json:"name"`
		Quantity int             `json:"quantity"`
		Price    decimal.Decimal `json:"price"`
		ImageSrc string          `json:"imageSrc,omitempty"`
		ImageURL *string         `json:"imageUrl,omitempty"`
		Category string          `json:"category,omitempty"`
	}

	OrderResponse struct {
		ID               string              `json:"_id"`
		UserID           string              `json:"userId"`
		DailyOrderNumber int64               `json:"dailyOrderNumber"`
		Items            []OrderItemResponse `json:"items"`
		TotalAmount      decimal.Decimal     `json:"totalAmount"`
		OrderStatus      OrderStatus         `json:"orderStatus"`
		OrderDate        time.Time           `json:"orderDate"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status"`
	}

	UpdateOrderStatusResponse struct {
		OrderID string      `json:"orderId"`
		Status  OrderStatus `json:"status"`
		Changed bool        `json:"changed"`
	}
)
