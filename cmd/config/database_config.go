package config

import (
	"fmt"

	"baratie/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the single connection pool shared by every repository. DATABASE_URL wins over
// the individual DB_* settings.
func ConnectDB() (*gorm.DB, error) {
	dsn := utils.GetConfig("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}
