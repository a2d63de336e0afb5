package order

import (
	"context"

	"baratie/domain"
	"baratie/entities"
	"baratie/pkg/counter"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		// WithinTransaction runs fn with repositories bound to one database transaction. Returning an
		// error from fn rolls everything back, including counter increments.
		WithinTransaction(ctx context.Context, fn func(orders OrderRepository, counters counter.CounterRepository) error) error
		CreateOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
		GetOrdersByUserID(ctx context.Context, userID string) ([]entities.Order, error)
		GetAllOrders(ctx context.Context) ([]entities.Order, error)
		UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error
	}

	orderRepository struct {
		db       *gorm.DB
		counters counter.CounterRepository
	}
)

func NewOrderRepository(db *gorm.DB, counters counter.CounterRepository) OrderRepository {
	return &orderRepository{db: db, counters: counters}
}

func itemsByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}

func (r *orderRepository) WithinTransaction(ctx context.Context, fn func(orders OrderRepository, counters counter.CounterRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		counters := r.counters.WithTx(tx)
		return fn(&orderRepository{db: tx, counters: counters}, counters)
	})
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).Preload("Items", itemsByPosition).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrdersByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	var orders []entities.Order
	err := r.db.WithContext(ctx).
		Preload("Items", itemsByPosition).
		Where("user_id = ?", userID).
		Order("order_date desc").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAllOrders(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	err := r.db.WithContext(ctx).
		Preload("Items", itemsByPosition).
		Order("order_date desc").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("id = ?", id).
		Update("order_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
