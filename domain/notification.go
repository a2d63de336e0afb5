package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"

	NotificationTypeOrder = "order"
)

var (
	MessageSuccessGetNotifications = "notifications retrieved successfully"
	MessageFailedGetNotifications  = "Failed to fetch notifications"
)

type (
	// OrderEvent is published after an order is placed or changes status.
	OrderEvent struct {
		Type             string          `json:"type"`
		OrderID          string          `json:"orderId"`
		UserID           string          `json:"userId"`
		DailyOrderNumber int64           `json:"dailyOrderNumber"`
		Status           OrderStatus     `json:"status"`
		PreviousStatus   OrderStatus     `json:"previousStatus,omitempty"`
		TotalAmount      decimal.Decimal `json:"totalAmount"`
		OccurredAt       time.Time       `json:"occurredAt"`
	}

	NotificationResponse struct {
		ID               string    `json:"id"`
		Type             string    `json:"type"`
		OrderID          string    `json:"orderId,omitempty"`
		DailyOrderNumber int64     `json:"dailyOrderNumber,omitempty"`
		Message          string    `json:"message"`
		Read             bool      `json:"read"`
		Timestamp        time.Time `json:"timestamp"`
	}
)
