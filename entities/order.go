package entities

import (
	"time"

	"baratie/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID               uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           string             `gorm:"index;not null" json:"user_id"`
	DailyOrderNumber int64              `gorm:"not null" json:"daily_order_number"`
	TotalAmount      decimal.Decimal    `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	OrderStatus      domain.OrderStatus `gorm:"type:varchar(16);index;not null" json:"order_status"`
	OrderDate        time.Time          `gorm:"type:timestamptz;index;not null" json:"order_date"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Timestamp
}

// OrderItem is a snapshot of a cart line taken when the order was placed. ItemID is the menu
// item id as the client sent it and is never joined against live menu tables.
type OrderItem struct {
	ID       uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID  uuid.UUID       `gorm:"type:uuid;index;not null" json:"order_id"`
	Position int             `gorm:"not null" json:"position"`
	ItemID   string          `gorm:"index" json:"item_id"`
	Name     string          `gorm:"not null" json:"name"`
	Quantity int             `gorm:"not null" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	ImageSrc string          `json:"image_src"`
	Category string          `json:"category"`
}
