package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/coolpotato/backend/internal/logger"
	"github.com/coolpotato/backend/internal/models"
)

// Migrate creates or updates every table, including the compound unique
// indexes on favorites and ratings.
func Migrate(db *gorm.DB) error {
	logger.Info("Running schema migration", zap.String("dialect", db.Dialector.Name()))
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
