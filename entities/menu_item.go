package entities

import (
	"baratie/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem rows live in one table per category ({slug}_menu).
type MenuItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Category    string          `gorm:"not null" json:"category"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Description string          `gorm:"type:text" json:"description"`
	ImageSrc    string          `json:"image_src"`

	Timestamp
}

type Special struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	ImageSrc    string          `json:"image_src"`
}

func (Special) TableName() string {
	return domain.SpecialsTable
}
