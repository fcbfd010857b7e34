package domain

import "time"

// ForeverSeconds is the expiry of a current list in which nothing ever ends.
// The list is then only recomputed on writes.
const ForeverSeconds = 10000000

// Expiry is how long a current list stays valid: the time until its soonest
// publish_end, or ForeverSeconds when no announcement in it has an end.
func Expiry(current []Announcement, now time.Time) time.Duration {
	var soonest *time.Time
	for i := range current {
		end := current[i].PublishEnd
		if end != nil && (soonest == nil || end.Before(*soonest)) {
			soonest = end
		}
	}
	if soonest == nil {
		return ForeverSeconds * time.Second
	}
	return soonest.Sub(now)
}

// ContainsID reports whether id is in list.
func ContainsID(list []Announcement, id uint) bool {
	for i := range list {
		if list[i].ID == id {
			return true
		}
	}
	return false
}

// Visitor is who a list is filtered for.
type Visitor struct {
	// UserID is zero for anonymous visitors.
	UserID uint
	// SessionExclusions are announcements dismissed during the session.
	SessionExclusions []uint
}

// Authenticated reports whether the visitor is signed in.
func (v Visitor) Authenticated() bool {
	return v.UserID != 0
}

// Visible filters the current list for v. dismissed are the announcement IDs the
// authenticated user dismissed permanently; they are ignored for anonymous visitors,
// who also never see members-only announcements. Order is preserved.
func Visible(current []Announcement, v Visitor, dismissed []uint) []Announcement {
	excluded := make(map[uint]struct{}, len(v.SessionExclusions)+len(dismissed))
	for _, id := range v.SessionExclusions {
		excluded[id] = struct{}{}
	}
	if v.Authenticated() {
		for _, id := range dismissed {
			excluded[id] = struct{}{}
		}
	}

	visible := make([]Announcement, 0, len(current))
	for _, a := range current {
		if !v.Authenticated() && a.MembersOnly {
			continue
		}
		if _, ok := excluded[a.ID]; ok {
			continue
		}
		visible = append(visible, a)
	}
	return visible
}
