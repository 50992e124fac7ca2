package database

import (
	"fmt"

	"github.com/javierportillar/saviaInventory-sub001/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Expense{},
		&models.Order{},
		&models.AuditLog{},
		&models.Backup{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
