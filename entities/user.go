package entities

import (
	"baratie/domain"

	"github.com/google/uuid"
)

// User is stored once per role table (employees, chefs, admins); the table is chosen with
// db.Table(role.Table()).
type User struct {
	ID       uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string      `gorm:"not null" json:"name"`
	Email    string      `gorm:"not null" json:"email"`
	Password string      `gorm:"not null" json:"-"`
	Role     domain.Role `gorm:"type:varchar(16);not null" json:"role"`

	Timestamp
}
