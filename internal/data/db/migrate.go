package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/something-core/internal/domain/thing"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&types.Thing{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
