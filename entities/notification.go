package entities

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           string     `gorm:"index;not null" json:"user_id"`
	OrderID          *uuid.UUID `gorm:"type:uuid" json:"order_id,omitempty"`
	DailyOrderNumber int64      `json:"daily_order_number"`
	Type             string     `gorm:"type:varchar(32);not null" json:"type"`
	Message          string     `gorm:"not null" json:"message"`
	Read             bool       `gorm:"not null;default:false" json:"read"`
	CreatedAt        time.Time  `gorm:"type:timestamptz;not null" json:"created_at"`
}
