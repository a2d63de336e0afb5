package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"baratie/domain"
	"baratie/entities"
	"baratie/internal/utils"
	"baratie/pkg/counter"
	"baratie/pkg/events"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var totalTolerance = decimal.RequireFromString("0.005")

type (
	OrderService interface {
		PlaceOrder(ctx context.Context, req domain.CreateOrderRequest, idempotencyKey string) (domain.CreateOrderResponse, error)
		GetOrderByID(ctx context.Context, id string) (domain.OrderResponse, error)
		GetMyOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		GetAllOrders(ctx context.Context) ([]domain.OrderResponse, error)
		UpdateOrderStatus(ctx context.Context, id string, status string) (domain.UpdateOrderStatusResponse, error)
	}

	// MenuItemFinder resolves live menu items by id. Ids that match nothing are simply absent from
	// the result.
	MenuItemFinder interface {
		FindItemsByIDs(ctx context.Context, ids []string) (map[string]entities.MenuItem, error)
	}

	orderService struct {
		orderRepository OrderRepository
		menuItems       MenuItemFinder
		guard           IdempotencyGuard
		publisher       events.Publisher
		logger          zerolog.Logger
		now             func() time.Time
	}
)

func NewOrderService(orderRepository OrderRepository, menuItems MenuItemFinder, guard IdempotencyGuard, publisher events.Publisher) OrderService {
	if guard == nil {
		guard = NewNoopIdempotencyGuard()
	}
	return &orderService{
		orderRepository: orderRepository,
		menuItems:       menuItems,
		guard:           guard,
		publisher:       publisher,
		logger:          utils.NewLogger("order"),
		now:             time.Now,
	}
}

// CartTotal is Σ price×quantity over the cart.
func CartTotal(items []domain.CartItemRequest) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func validateOrder(req domain.CreateOrderRequest) error {
	if req.UserID == "" || len(req.CartItems) == 0 || req.TotalAmount == nil {
		return domain.ErrInvalidOrderData
	}
	for _, item := range req.CartItems {
		if item.Name == "" || item.Quantity < 1 || item.Price.IsNegative() {
			return domain.ErrInvalidOrderData
		}
	}
	expected := CartTotal(req.CartItems)
	if expected.Sub(*req.TotalAmount).Abs().GreaterThan(totalTolerance) {
		return fmt.Errorf("%w: expected %s, got %s", domain.ErrTotalAmountMismatch, expected.StringFixed(2), req.TotalAmount.StringFixed(2))
	}
	return nil
}

func (s *orderService) PlaceOrder(ctx context.Context, req domain.CreateOrderRequest, idempotencyKey string) (domain.CreateOrderResponse, error) {
	if err := validateOrder(req); err != nil {
		return domain.CreateOrderResponse{}, err
	}

	if idempotencyKey != "" {
		claimed, err := s.guard.Claim(ctx, idempotencyKey)
		if err != nil {
			return domain.CreateOrderResponse{}, fmt.Errorf("check idempotency key: %w", err)
		}
		if !claimed {
			return domain.CreateOrderResponse{}, domain.ErrDuplicateOrder
		}
	}

	now := s.now().UTC()
	order := &entities.Order{
		ID:          uuid.New(),
		UserID:      req.UserID,
		TotalAmount: CartTotal(req.CartItems).Round(2),
		OrderStatus: domain.OrderStatusPlaced,
		OrderDate:   now,
		Items:       make([]entities.OrderItem, 0, len(req.CartItems)),
	}
	for i, item := range req.CartItems {
		order.Items = append(order.Items, entities.OrderItem{
			ID:       uuid.New(),
			OrderID:  order.ID,
			Position: i,
			ItemID:   item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			ImageSrc: item.ImageSrc,
			Category: item.Category,
		})
	}

	err := s.orderRepository.WithinTransaction(ctx, func(orders OrderRepository, counters counter.CounterRepository) error {
		number, err := counters.NextValue(ctx, domain.OrderSequenceName, now)
		if err != nil {
			return err
		}
		order.DailyOrderNumber = number
		return orders.CreateOrder(ctx, order)
	})
	if err != nil {
		if idempotencyKey != "" {
			if releaseErr := s.guard.Release(ctx, idempotencyKey); releaseErr != nil {
				s.logger.Warn().Err(releaseErr).Str("key", idempotencyKey).Msg("failed to release idempotency key")
			}
		}
		return domain.CreateOrderResponse{}, fmt.Errorf("place order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int64("daily_order_number", order.DailyOrderNumber).
		Str("total", order.TotalAmount.StringFixed(2)).
		Msg("order placed")

	s.publish(ctx, domain.OrderEvent{
		Type:             domain.EventOrderPlaced,
		OrderID:          order.ID.String(),
		UserID:           order.UserID,
		DailyOrderNumber: order.DailyOrderNumber,
		Status:           order.OrderStatus,
		TotalAmount:      order.TotalAmount,
		OccurredAt:       now,
	})

	return domain.CreateOrderResponse{
		OrderID:          order.ID.String(),
		DailyOrderNumber: order.DailyOrderNumber,
	}, nil
}

func (s *orderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("type", event.Type).Str("order_id", event.OrderID).Msg("failed to publish order event")
	}
}

func parseOrderID(id string) (uuid.UUID, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidOrderID
	}
	return orderID, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id string) (domain.OrderResponse, error) {
	orderID, err := parseOrderID(id)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, fmt.Errorf("get order %s: %w", id, err)
	}
	return toOrderResponse(*order), nil
}

func (s *orderService) GetMyOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	if userID == "" {
		return nil, domain.ErrMissingUserID
	}

	orders, err := s.orderRepository.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get orders of %s: %w", userID, err)
	}

	live := map[string]entities.MenuItem{}
	if ids := distinctItemIDs(orders); len(ids) > 0 && s.menuItems != nil {
		found, err := s.menuItems.FindItemsByIDs(ctx, ids)
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("live menu lookup failed, using order snapshots")
		} else {
			live = found
		}
	}

	return enrichOrders(orders, live), nil
}

func (s *orderService) GetAllOrders(ctx context.Context) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetAllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	res := make([]domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		res = append(res, toOrderResponse(order))
	}
	return res, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, status string) (domain.UpdateOrderStatusResponse, error) {
	newStatus, err := domain.ParseOrderStatus(status)
	if err != nil {
		return domain.UpdateOrderStatusResponse{}, err
	}
	orderID, err := parseOrderID(id)
	if err != nil {
		return domain.UpdateOrderStatusResponse{}, err
	}

	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UpdateOrderStatusResponse{}, domain.ErrOrderNotFound
		}
		return domain.UpdateOrderStatusResponse{}, fmt.Errorf("get order %s: %w", id, err)
	}

	res := domain.UpdateOrderStatusResponse{OrderID: order.ID.String(), Status: newStatus}
	if order.OrderStatus == newStatus {
		return res, nil
	}

	if err := s.orderRepository.UpdateOrderStatus(ctx, orderID, newStatus); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UpdateOrderStatusResponse{}, domain.ErrOrderNotFound
		}
		return domain.UpdateOrderStatusResponse{}, fmt.Errorf("update order %s: %w", id, err)
	}
	res.Changed = true

	s.publish(ctx, domain.OrderEvent{
		Type:             domain.EventOrderStatusChanged,
		OrderID:          order.ID.String(),
		UserID:           order.UserID,
		DailyOrderNumber: order.DailyOrderNumber,
		Status:           newStatus,
		PreviousStatus:   order.OrderStatus,
		TotalAmount:      order.TotalAmount,
		OccurredAt:       s.now().UTC(),
	})
	return res, nil
}
