package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpiry(t *testing.T) {
	tests := []struct {
		name    string
		current []Announcement
		want    time.Duration
	}{
		{name: "Empty", current: nil, want: ForeverSeconds * time.Second},
		{name: "NoEnds", current: []Announcement{{ID: 1}, {ID: 2}}, want: ForeverSeconds * time.Second},
		{
			name:    "SoonestEnd",
			current: []Announcement{{ID: 1, PublishEnd: at(90 * time.Second)}, {ID: 2, PublishEnd: at(time.Hour)}, {ID: 3}},
			want:    90 * time.Second,
		},
		{
			name:    "SoonestNotFirst",
			current: []Announcement{{ID: 1, PublishEnd: at(time.Hour)}, {ID: 2, PublishEnd: at(1500 * time.Millisecond)}},
			want:    1500 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expiry(tt.current, now))
		})
	}
}

func TestExpiry_Seconds(t *testing.T) {
	current := []Announcement{{ID: 1, PublishEnd: at(time.Hour + 500*time.Millisecond)}}

	assert.InDelta(t, 3600.5, Expiry(current, now).Seconds(), 1e-9)
	assert.Equal(t, float64(10000000), Expiry(nil, now).Seconds())
}

func TestContainsID(t *testing.T) {
	list := []Announcement{{ID: 1}, {ID: 4}}

	assert.True(t, ContainsID(list, 4))
	assert.False(t, ContainsID(list, 2))
	assert.False(t, ContainsID(nil, 1))
}

func TestVisible(t *testing.T) {
	current := []Announcement{
		{ID: 1, Title: "public"},
		{ID: 2, Title: "members", MembersOnly: true},
		{ID: 3, Title: "public too"},
		{ID: 4, Title: "members too", MembersOnly: true},
	}

	ids := func(list []Announcement) []uint {
		out := []uint{}
		for _, a := range list {
			out = append(out, a.ID)
		}
		return out
	}

	tests := []struct {
		name      string
		visitor   Visitor
		dismissed []uint
		want      []uint
	}{
		{name: "AnonymousSeesPublicOnly", visitor: Visitor{}, want: []uint{1, 3}},
		{name: "AuthenticatedSeesAll", visitor: Visitor{UserID: 9}, want: []uint{1, 2, 3, 4}},
		{name: "AnonymousSessionExclusion", visitor: Visitor{SessionExclusions: []uint{3}}, want: []uint{1}},
		{name: "AuthenticatedPermanentDismissal", visitor: Visitor{UserID: 9}, dismissed: []uint{2}, want: []uint{1, 3, 4}},
		{
			name:      "UnionOfSessionAndPermanent",
			visitor:   Visitor{UserID: 9, SessionExclusions: []uint{1}},
			dismissed: []uint{4},
			want:      []uint{2, 3},
		},
		{name: "AnonymousIgnoresDismissals", visitor: Visitor{}, dismissed: []uint{1}, want: []uint{1, 3}},
		{name: "UnknownExclusionsIgnored", visitor: Visitor{SessionExclusions: []uint{99}}, want: []uint{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Visible(current, tt.visitor, tt.dismissed)))
		})
	}
}
