package domain

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// DismissalType is the policy controlling whether and how a visitor may hide an announcement.
type DismissalType int

const (
	// DismissalNo never offers a dismiss action.
	DismissalNo DismissalType = 1
	// DismissalSession hides the announcement for the rest of the visitor's session.
	DismissalSession DismissalType = 2
	// DismissalPermanent records a Dismissal for the authenticated user.
	DismissalPermanent DismissalType = 3
)

// Valid reports whether t is one of the known policies.
func (t DismissalType) Valid() bool {
	return t == DismissalNo || t == DismissalSession || t == DismissalPermanent
}

// Route names reversed by AbsoluteURL and DismissURL.
const (
	RouteDetail  = "announcements_detail"
	RouteDismiss = "announcements_dismiss"
)

// MaxTitleLength is the maximum title length in characters.
const MaxTitleLength = 50

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrInvalidAnnouncement  = errors.New("invalid announcement")
	ErrInvalidDismissalType = errors.New("invalid dismissal type")
	ErrDismissalNotAllowed  = errors.New("dismissal not allowed")
)

// URLReverser resolves a named route with positional arguments into a path.
type URLReverser interface {
	Reverse(name string, args ...any) (string, error)
}

// Announcement is a single published message.
type Announcement struct {
	ID            uint          `gorm:"primarykey" json:"id"`
	Title         string        `gorm:"size:50;not null" json:"title"`
	Content       string        `gorm:"type:text;not null" json:"content"`
	CreatorID     uint          `gorm:"not null;index" json:"creator_id"`
	CreationDate  time.Time     `gorm:"not null" json:"creation_date"`
	SiteWide      bool          `gorm:"not null;index" json:"site_wide"`
	MembersOnly   bool          `gorm:"not null" json:"members_only"`
	DismissalType DismissalType `gorm:"not null" json:"dismissal_type"`
	PublishStart  time.Time     `gorm:"not null;index" json:"publish_start"`
	PublishEnd    *time.Time    `gorm:"index" json:"publish_end"`

	Dismissals []Dismissal `gorm:"foreignKey:AnnouncementID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Announcement) TableName() string { return "announcements" }

// NewAnnouncement returns an announcement with the default policy (session dismissal),
// created and published at now.
func NewAnnouncement(creatorID uint, title, content string, now time.Time) *Announcement {
	return &Announcement{
		Title:         title,
		Content:       content,
		CreatorID:     creatorID,
		CreationDate:  now,
		DismissalType: DismissalSession,
		PublishStart:  now,
	}
}

// Validate checks the field constraints of the table.
func (a *Announcement) Validate() error {
	switch {
	case a.Title == "":
		return fmt.Errorf("%w: title is required", ErrInvalidAnnouncement)
	case utf8.RuneCountInString(a.Title) > MaxTitleLength:
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidAnnouncement, MaxTitleLength)
	case a.Content == "":
		return fmt.Errorf("%w: content is required", ErrInvalidAnnouncement)
	case a.CreatorID == 0:
		return fmt.Errorf("%w: creator is required", ErrInvalidAnnouncement)
	case !a.DismissalType.Valid():
		return fmt.Errorf("%w: %d", ErrInvalidDismissalType, a.DismissalType)
	case a.PublishEnd != nil && !a.PublishEnd.After(a.PublishStart):
		return fmt.Errorf("%w: publish_end must be after publish_start", ErrInvalidAnnouncement)
	}
	return nil
}

// IsCurrent reports whether now falls inside the publish window.
func (a *Announcement) IsCurrent(now time.Time) bool {
	return !a.PublishStart.After(now) && (a.PublishEnd == nil || a.PublishEnd.After(now))
}

// Eligible reports whether the announcement belongs in the cached current list.
func (a *Announcement) Eligible(now time.Time) bool {
	return a.SiteWide && a.IsCurrent(now)
}

// Dismissible reports whether a dismiss action is offered.
func (a *Announcement) Dismissible() bool {
	return a.DismissalType != DismissalNo
}

// AbsoluteURL returns the detail URL.
func (a *Announcement) AbsoluteURL(r URLReverser) (string, error) {
	return r.Reverse(RouteDetail, a.ID)
}

// DismissURL returns the dismiss URL, or "" when dismissals are not allowed.
func (a *Announcement) DismissURL(r URLReverser) (string, error) {
	if !a.Dismissible() {
		return "", nil
	}
	return r.Reverse(RouteDismiss, a.ID)
}

func (a *Announcement) String() string { return a.Title }

// Dismissal records one user's permanent dismissal of one announcement.
type Dismissal struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_dismissal_user_announcement" json:"user_id"`
	AnnouncementID uint      `gorm:"not null;uniqueIndex:idx_dismissal_user_announcement;index" json:"announcement_id"`
	DismissedAt    time.Time `gorm:"not null" json:"dismissed_at"`
}

func (Dismissal) TableName() string { return "dismissals" }

// NewDismissal records userID dismissing announcementID at now.
func NewDismissal(userID, announcementID uint, now time.Time) *Dismissal {
	return &Dismissal{
		UserID:         userID,
		AnnouncementID: announcementID,
		DismissedAt:    now,
	}
}
