package service

import (
	"context"
	"time"

	"site-announcements/internal/features/announcements/domain"

	"github.com/stretchr/testify/mock"
)

// MockAnnouncementRepository is a mock implementation of ports.AnnouncementRepository
type MockAnnouncementRepository struct {
	mock.Mock
}

func (m *MockAnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) Update(ctx context.Context, a *domain.Announcement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) Delete(ctx context.Context, a *domain.Announcement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) GetByID(ctx context.Context, id uint) (*domain.Announcement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) List(ctx context.Context) ([]domain.Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) ListCurrent(ctx context.Context, now time.Time) ([]domain.Announcement, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Announcement), args.Error(1)
}

// MockDismissalRepository is a mock implementation of ports.DismissalRepository
type MockDismissalRepository struct {
	mock.Mock
}

func (m *MockDismissalRepository) Create(ctx context.Context, d *domain.Dismissal) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDismissalRepository) AnnouncementIDsForUser(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

// staticCurrent serves a fixed current list.
type staticCurrent struct {
	list []domain.Announcement
	err  error
}

func (s staticCurrent) Load(ctx context.Context) ([]domain.Announcement, error) {
	return s.list, s.err
}
