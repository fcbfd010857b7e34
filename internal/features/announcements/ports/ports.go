package ports

import (
	"context"
	"time"

	"site-announcements/internal/features/announcements/domain"
)

// AnnouncementService defines the primary port for announcement operations.
type AnnouncementService interface {
	// Current returns the cached list of current site-wide announcements.
	Current(ctx context.Context) ([]domain.Announcement, error)
	// VisibleFor filters the current list for a visitor.
	VisibleFor(ctx context.Context, visitor domain.Visitor) ([]domain.Announcement, error)
	// Get returns a single announcement as the visitor may see it.
	Get(ctx context.Context, id uint, visitor domain.Visitor) (*domain.Announcement, error)
	// Dismiss applies the announcement's dismissal policy for the visitor and reports the
	// policy that was applied.
	Dismiss(ctx context.Context, id uint, visitor domain.Visitor) (domain.DismissalType, error)

	List(ctx context.Context) ([]domain.Announcement, error)
	Create(ctx context.Context, a *domain.Announcement) error
	Update(ctx context.Context, a *domain.Announcement) error
	Delete(ctx context.Context, id uint) error
}

// AnnouncementRepository defines the secondary port for announcement storage.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) error
	Update(ctx context.Context, a *domain.Announcement) error
	Delete(ctx context.Context, a *domain.Announcement) error
	GetByID(ctx context.Context, id uint) (*domain.Announcement, error)
	List(ctx context.Context) ([]domain.Announcement, error)
	// ListCurrent returns the announcements eligible at now, soonest publish_end first,
	// open-ended ones last.
	ListCurrent(ctx context.Context, now time.Time) ([]domain.Announcement, error)
}

// DismissalRepository defines the secondary port for permanent dismissals.
type DismissalRepository interface {
	// Create stores d; dismissing the same announcement twice is not an error.
	Create(ctx context.Context, d *domain.Dismissal) error
	AnnouncementIDsForUser(ctx context.Context, userID uint) ([]uint, error)
}

// CurrentAnnouncements is the read side of the cached current list.
type CurrentAnnouncements interface {
	Load(ctx context.Context) ([]domain.Announcement, error)
}

// AnnouncementObserver is notified after announcement writes are committed.
type AnnouncementObserver interface {
	OnSave(ctx context.Context, a *domain.Announcement) error
	OnDelete(ctx context.Context, a *domain.Announcement) error
}
