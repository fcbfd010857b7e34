package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func TestNewAnnouncement(t *testing.T) {
	a := NewAnnouncement(7, "Maintenance", "Down at midnight", now)

	assert.Equal(t, uint(7), a.CreatorID)
	assert.Equal(t, DismissalSession, a.DismissalType)
	assert.Equal(t, now, a.CreationDate)
	assert.Equal(t, now, a.PublishStart)
	assert.Nil(t, a.PublishEnd)
	assert.False(t, a.SiteWide)
	assert.False(t, a.MembersOnly)
	assert.NoError(t, a.Validate())
	assert.Equal(t, "Maintenance", a.String())
}

func TestAnnouncement_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(a *Announcement)
		wantErr error
	}{
		{name: "Valid", mutate: func(a *Announcement) {}},
		{name: "TitleAtLimit", mutate: func(a *Announcement) { a.Title = strings.Repeat("ñ", MaxTitleLength) }},
		{name: "MissingTitle", mutate: func(a *Announcement) { a.Title = "" }, wantErr: ErrInvalidAnnouncement},
		{name: "LongTitle", mutate: func(a *Announcement) { a.Title = strings.Repeat("x", MaxTitleLength+1) }, wantErr: ErrInvalidAnnouncement},
		{name: "MissingContent", mutate: func(a *Announcement) { a.Content = "" }, wantErr: ErrInvalidAnnouncement},
		{name: "MissingCreator", mutate: func(a *Announcement) { a.CreatorID = 0 }, wantErr: ErrInvalidAnnouncement},
		{name: "UnknownDismissalType", mutate: func(a *Announcement) { a.DismissalType = 9 }, wantErr: ErrInvalidDismissalType},
		{name: "EndBeforeStart", mutate: func(a *Announcement) { a.PublishEnd = at(-time.Hour) }, wantErr: ErrInvalidAnnouncement},
		{name: "EndEqualsStart", mutate: func(a *Announcement) { a.PublishEnd = at(0) }, wantErr: ErrInvalidAnnouncement},
		{name: "EndAfterStart", mutate: func(a *Announcement) { a.PublishEnd = at(time.Hour) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnnouncement(1, "Title", "Content", now)
			tt.mutate(a)

			err := a.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnnouncement_Eligible(t *testing.T) {
	tests := []struct {
		name        string
		siteWide    bool
		start       time.Time
		end         *time.Time
		wantCurrent bool
	}{
		{name: "OpenEnded", siteWide: true, start: now.Add(-time.Hour), wantCurrent: true},
		{name: "StartsNow", siteWide: true, start: now, wantCurrent: true},
		{name: "InsideWindow", siteWide: true, start: now.Add(-time.Hour), end: at(time.Hour), wantCurrent: true},
		{name: "EndsNow", siteWide: true, start: now.Add(-time.Hour), end: at(0), wantCurrent: false},
		{name: "Ended", siteWide: true, start: now.Add(-2 * time.Hour), end: at(-time.Hour), wantCurrent: false},
		{name: "NotStarted", siteWide: true, start: now.Add(time.Minute), wantCurrent: false},
		{name: "NotSiteWide", siteWide: false, start: now.Add(-time.Hour), wantCurrent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Announcement{SiteWide: tt.siteWide, PublishStart: tt.start, PublishEnd: tt.end}

			assert.Equal(t, tt.wantCurrent, a.IsCurrent(now))
			assert.Equal(t, tt.wantCurrent && tt.siteWide, a.Eligible(now))
		})
	}
}

type fakeReverser struct{}

func (fakeReverser) Reverse(name string, args ...any) (string, error) {
	switch name {
	case RouteDetail:
		return fmt.Sprintf("/announcements/%v", args[0]), nil
	case RouteDismiss:
		return fmt.Sprintf("/announcements/%v/dismiss", args[0]), nil
	}
	return "", errors.New("no reverse match")
}

func TestAnnouncement_URLs(t *testing.T) {
	tests := []struct {
		name        string
		policy      DismissalType
		wantDismiss string
	}{
		{name: "NoDismissal", policy: DismissalNo, wantDismiss: ""},
		{name: "Session", policy: DismissalSession, wantDismiss: "/announcements/5/dismiss"},
		{name: "Permanent", policy: DismissalPermanent, wantDismiss: "/announcements/5/dismiss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Announcement{ID: 5, DismissalType: tt.policy}

			detail, err := a.AbsoluteURL(fakeReverser{})
			require.NoError(t, err)
			assert.Equal(t, "/announcements/5", detail)

			dismiss, err := a.DismissURL(fakeReverser{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantDismiss, dismiss)
			assert.Equal(t, tt.wantDismiss != "", a.Dismissible())
		})
	}
}

func TestNewDismissal(t *testing.T) {
	d := NewDismissal(3, 9, now)

	assert.Equal(t, uint(3), d.UserID)
	assert.Equal(t, uint(9), d.AnnouncementID)
	assert.Equal(t, now, d.DismissedAt)
}
