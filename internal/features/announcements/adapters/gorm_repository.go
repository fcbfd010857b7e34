package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"site-announcements/internal/core/logger"
	"site-announcements/internal/features/announcements/domain"
	"site-announcements/internal/features/announcements/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// editableColumns are written by Update; creator and creation date are immutable.
var editableColumns = []string{
	"title",
	"content",
	"site_wide",
	"members_only",
	"dismissal_type",
	"publish_start",
	"publish_end",
}

// GormAnnouncementRepository implements ports.AnnouncementRepository using gorm.
// Observers are notified after each committed write.
type GormAnnouncementRepository struct {
	db        *gorm.DB
	observers []ports.AnnouncementObserver
}

// NewGormAnnouncementRepository creates a new GormAnnouncementRepository.
func NewGormAnnouncementRepository(db *gorm.DB, observers ...ports.AnnouncementObserver) *GormAnnouncementRepository {
	return &GormAnnouncementRepository{
		db:        db,
		observers: observers,
	}
}

// AddObserver registers o for writes made after this call.
func (r *GormAnnouncementRepository) AddObserver(o ports.AnnouncementObserver) {
	r.observers = append(r.observers, o)
}

// Create inserts a new announcement.
func (r *GormAnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error; err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}

	r.notifySave(ctx, a)
	return nil
}

// Update writes the editable columns of an existing announcement.
func (r *GormAnnouncementRepository) Update(ctx context.Context, a *domain.Announcement) error {
	if a.ID == 0 {
		return domain.ErrAnnouncementNotFound
	}

	err := r.db.WithContext(ctx).
		Model(a).
		Select(editableColumns).
		Updates(a).Error
	if err != nil {
		return fmt.Errorf("failed to update announcement %d: %w", a.ID, err)
	}

	r.notifySave(ctx, a)
	return nil
}

// Delete removes the announcement together with its dismissals.
func (r *GormAnnouncementRepository) Delete(ctx context.Context, a *domain.Announcement) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("announcement_id = ?", a.ID).Delete(&domain.Dismissal{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&domain.Announcement{}, a.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAnnouncementNotFound
		}
		return nil
	})
	if errors.Is(err, domain.ErrAnnouncementNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to delete announcement %d: %w", a.ID, err)
	}

	for _, o := range r.observers {
		if err := o.OnDelete(ctx, a); err != nil {
			logger.Get().Error("Announcement delete hook failed",
				zap.Uint("announcement_id", a.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}

// GetByID returns the announcement or domain.ErrAnnouncementNotFound.
func (r *GormAnnouncementRepository) GetByID(ctx context.Context, id uint) (*domain.Announcement, error) {
	var a domain.Announcement
	err := r.db.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAnnouncementNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get announcement %d: %w", id, err)
	}
	return &a, nil
}

// List returns every announcement, newest first.
func (r *GormAnnouncementRepository) List(ctx context.Context) ([]domain.Announcement, error) {
	var list []domain.Announcement
	err := r.db.WithContext(ctx).
		Order("creation_date DESC").
		Order("id DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return list, nil
}

// ListCurrent returns the site-wide announcements published at now.
// Ordering puts open-ended announcements last on every dialect.
func (r *GormAnnouncementRepository) ListCurrent(ctx context.Context, now time.Time) ([]domain.Announcement, error) {
	list := []domain.Announcement{}
	err := r.db.WithContext(ctx).
		Where("site_wide = ?", true).
		Where("publish_start <= ?", now).
		Where("publish_end IS NULL OR publish_end > ?", now).
		Order("publish_end IS NULL").
		Order("publish_end ASC").
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list current announcements: %w", err)
	}
	return list, nil
}

func (r *GormAnnouncementRepository) notifySave(ctx context.Context, a *domain.Announcement) {
	for _, o := range r.observers {
		if err := o.OnSave(ctx, a); err != nil {
			logger.Get().Error("Announcement save hook failed",
				zap.Uint("announcement_id", a.ID),
				zap.Error(err),
			)
		}
	}
}

// GormDismissalRepository implements ports.DismissalRepository using gorm.
type GormDismissalRepository struct {
	db *gorm.DB
}

// NewGormDismissalRepository creates a new GormDismissalRepository.
func NewGormDismissalRepository(db *gorm.DB) *GormDismissalRepository {
	return &GormDismissalRepository{db: db}
}

// Create stores d, ignoring a duplicate (user, announcement) pair.
func (r *GormDismissalRepository) Create(ctx context.Context, d *domain.Dismissal) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(d).Error
	if err != nil {
		return fmt.Errorf("failed to create dismissal: %w", err)
	}
	return nil
}

// AnnouncementIDsForUser returns the announcements userID dismissed permanently.
func (r *GormDismissalRepository) AnnouncementIDsForUser(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&domain.Dismissal{}).
		Where("user_id = ?", userID).
		Pluck("announcement_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list dismissals of user %d: %w", userID, err)
	}
	return ids, nil
}
