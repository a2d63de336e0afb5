package migration

import (
	"fmt"

	"baratie/domain"
	"baratie/entities"
	"baratie/internal/utils"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	logger := utils.NewLogger("migrate")

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return fmt.Errorf("enable uuid-ossp: %w", err)
	}

	for _, model := range []interface{}{
		&entities.Order{},
		&entities.OrderItem{},
		&entities.Counter{},
		&entities.Special{},
		&entities.Notification{},
	} {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}

	for _, role := range domain.Roles() {
		table := role.Table()
		if err := db.Table(table).AutoMigrate(&entities.User{}); err != nil {
			return fmt.Errorf("migrate %s: %w", table, err)
		}
		index := fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_email ON %s (email)`, table, table)
		if err := db.Exec(index).Error; err != nil {
			return fmt.Errorf("index %s.email: %w", table, err)
		}
	}

	for _, category := range domain.DefaultCategories {
		table, err := domain.MenuTable(category)
		if err != nil {
			return err
		}
		if err := db.Table(table).AutoMigrate(&entities.MenuItem{}); err != nil {
			return fmt.Errorf("migrate %s: %w", table, err)
		}
	}

	logger.Info().Msg("database migration complete")
	return nil
}
