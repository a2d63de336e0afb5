package admin

import (
	"context"
	"time"

	"baratie/domain"
	"baratie/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AdminRepository interface {
		GetOrdersInWindow(ctx context.Context, from, until time.Time) ([]entities.Order, error)
		GetEmployeesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entities.User, error)
	}

	adminRepository struct {
		db *gorm.DB
	}
)

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetOrdersInWindow(ctx context.Context, from, until time.Time) ([]entities.Order, error) {
	var orders []entities.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Where("order_date >= ? AND order_date < ?", from, until).
		Order("order_date desc").
		Find(&orders).Error
	return orders, err
}

func (r *adminRepository) GetEmployeesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entities.User, error) {
	employees := make(map[uuid.UUID]entities.User, len(ids))
	if len(ids) == 0 {
		return employees, nil
	}

	var users []entities.User
	if err := r.db.WithContext(ctx).Table(domain.RoleEmployee.Table()).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, user := range users {
		employees[user.ID] = user
	}
	return employees, nil
}
