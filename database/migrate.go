package database

import (
	"fmt"

	"fairway_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every model. The uuid
// defaults need the uuid-ossp extension, so it is created first.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Review{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
