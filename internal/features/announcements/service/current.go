package service

import (
	"context"
	"time"

	"site-announcements/internal/features/announcements/domain"
	"site-announcements/internal/features/announcements/ports"
)

// CurrentCacheKey is the cache key of the current announcements list.
const CurrentCacheKey = "announcements"

// CurrentQuery is the cached query of site-wide announcements inside their publish
// window. It implements cache.Query[[]domain.Announcement, *domain.Announcement].
type CurrentQuery struct {
	repo ports.AnnouncementRepository
	now  func() time.Time
}

// NewCurrentQuery creates a CurrentQuery reading from repo.
func NewCurrentQuery(repo ports.AnnouncementRepository) *CurrentQuery {
	return &CurrentQuery{
		repo: repo,
		now:  time.Now,
	}
}

func (q *CurrentQuery) Key() string { return CurrentCacheKey }

// Compute lists the current announcements, soonest publish_end first.
func (q *CurrentQuery) Compute(ctx context.Context) ([]domain.Announcement, error) {
	return q.repo.ListCurrent(ctx, q.now())
}

// Expiry keeps the list until its first announcement ends.
func (q *CurrentQuery) Expiry(result []domain.Announcement) time.Duration {
	return domain.Expiry(result, q.now())
}

// StaleOnSave: a saved announcement changes the list when it belongs in it now or
// was in it before the save.
func (q *CurrentQuery) StaleOnSave(cached []domain.Announcement, found bool, a *domain.Announcement) bool {
	return a.Eligible(q.now()) || domain.ContainsID(cached, a.ID)
}

// StaleOnDelete: only deleting a listed announcement changes the list.
func (q *CurrentQuery) StaleOnDelete(cached []domain.Announcement, found bool, a *domain.Announcement) bool {
	return domain.ContainsID(cached, a.ID)
}
