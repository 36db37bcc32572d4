package database

import (
	"fmt"

	"vinolog_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate выполняет миграцию всех моделей.
// Порядок важен: FK с каскадами создаются после родительских таблиц.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Wine{},
		&models.Review{},
		&models.Comment{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
