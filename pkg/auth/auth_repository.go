package auth

import (
	"context"

	"baratie/domain"
	"baratie/entities"

	"gorm.io/gorm"
)

type (
	AuthRepository interface {
		CreateUser(ctx context.Context, role domain.Role, user *entities.User) error
		GetUserByEmail(ctx context.Context, role domain.Role, email string) (*entities.User, error)
	}

	authRepository struct {
		db *gorm.DB
	}
)

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(ctx context.Context, role domain.Role, user *entities.User) error {
	return r.db.WithContext(ctx).Table(role.Table()).Create(user).Error
}

func (r *authRepository) GetUserByEmail(ctx context.Context, role domain.Role, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Table(role.Table()).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
