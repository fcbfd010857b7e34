package adapters

import (
	"fmt"

	"site-announcements/internal/features/announcements/domain"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the announcements and dismissals tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Announcement{}, &domain.Dismissal{}); err != nil {
		return fmt.Errorf("failed to migrate announcements schema: %w", err)
	}
	return nil
}
