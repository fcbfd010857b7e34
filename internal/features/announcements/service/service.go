package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"site-announcements/internal/features/announcements/domain"
	"site-announcements/internal/features/announcements/ports"
)

// AnnouncementServiceImpl implements ports.AnnouncementService.
type AnnouncementServiceImpl struct {
	repo       ports.AnnouncementRepository
	dismissals ports.DismissalRepository
	current    ports.CurrentAnnouncements
	now        func() time.Time
}

// NewAnnouncementService creates a new AnnouncementServiceImpl.
func NewAnnouncementService(
	repo ports.AnnouncementRepository,
	dismissals ports.DismissalRepository,
	current ports.CurrentAnnouncements,
) *AnnouncementServiceImpl {
	return &AnnouncementServiceImpl{
		repo:       repo,
		dismissals: dismissals,
		current:    current,
		now:        time.Now,
	}
}

// Current returns the cached current list.
func (s *AnnouncementServiceImpl) Current(ctx context.Context) ([]domain.Announcement, error) {
	list, err := s.current.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load current announcements: %w", err)
	}
	return list, nil
}

// VisibleFor returns the current list minus what visitor dismissed or may not see.
func (s *AnnouncementServiceImpl) VisibleFor(ctx context.Context, visitor domain.Visitor) ([]domain.Announcement, error) {
	list, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	var dismissed []uint
	if visitor.Authenticated() {
		dismissed, err = s.dismissals.AnnouncementIDsForUser(ctx, visitor.UserID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to load dismissals: %w", err)
		}
	}

	return domain.Visible(list, visitor, dismissed), nil
}

// Get returns announcement id. Members-only announcements do not exist for
// anonymous visitors.
func (s *AnnouncementServiceImpl) Get(ctx context.Context, id uint, visitor domain.Visitor) (*domain.Announcement, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.wrap("get announcement", err)
	}
	if a.MembersOnly && !visitor.Authenticated() {
		return nil, domain.ErrAnnouncementNotFound
	}
	return a, nil
}

// Dismiss records a permanent dismissal for authenticated visitors when the policy
// allows it. Session dismissals are left to the caller, which owns the session.
func (s *AnnouncementServiceImpl) Dismiss(ctx context.Context, id uint, visitor domain.Visitor) (domain.DismissalType, error) {
	a, err := s.Get(ctx, id, visitor)
	if err != nil {
		return 0, err
	}

	switch a.DismissalType {
	case domain.DismissalSession:
		return domain.DismissalSession, nil
	case domain.DismissalPermanent:
		if !visitor.Authenticated() {
			return 0, fmt.Errorf("%w: permanent dismissal requires a signed in user", domain.ErrDismissalNotAllowed)
		}
		if err := s.dismissals.Create(ctx, domain.NewDismissal(visitor.UserID, a.ID, s.now())); err != nil {
			return 0, fmt.Errorf("service: failed to dismiss announcement: %w", err)
		}
		return domain.DismissalPermanent, nil
	default:
		return 0, domain.ErrDismissalNotAllowed
	}
}

// List returns every announcement for administration.
func (s *AnnouncementServiceImpl) List(ctx context.Context) ([]domain.Announcement, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list announcements: %w", err)
	}
	return list, nil
}

// Create validates and stores a new announcement.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, a *domain.Announcement) error {
	if a.CreationDate.IsZero() {
		a.CreationDate = s.now()
	}
	if a.PublishStart.IsZero() {
		a.PublishStart = a.CreationDate
	}
	if a.DismissalType == 0 {
		a.DismissalType = domain.DismissalSession
	}
	if err := a.Validate(); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return fmt.Errorf("service: failed to create announcement: %w", err)
	}
	return nil
}

// Update replaces the editable fields of an existing announcement. Creator and
// creation date are kept from the stored record.
func (s *AnnouncementServiceImpl) Update(ctx context.Context, a *domain.Announcement) error {
	existing, err := s.repo.GetByID(ctx, a.ID)
	if err != nil {
		return s.wrap("update announcement", err)
	}

	a.CreatorID = existing.CreatorID
	a.CreationDate = existing.CreationDate
	if a.PublishStart.IsZero() {
		a.PublishStart = existing.PublishStart
	}
	if err := a.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return s.wrap("update announcement", err)
	}
	return nil
}

// Delete removes announcement id and its dismissals.
func (s *AnnouncementServiceImpl) Delete(ctx context.Context, id uint) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return s.wrap("delete announcement", err)
	}
	if err := s.repo.Delete(ctx, a); err != nil {
		return s.wrap("delete announcement", err)
	}
	return nil
}

// wrap keeps not-found errors bare so callers can map them.
func (s *AnnouncementServiceImpl) wrap(op string, err error) error {
	if errors.Is(err, domain.ErrAnnouncementNotFound) {
		return err
	}
	return fmt.Errorf("service: failed to %s: %w", op, err)
}
