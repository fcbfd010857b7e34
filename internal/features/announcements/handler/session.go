package handler

import (
	"slices"

	"site-announcements/internal/core/auth"
	"site-announcements/internal/features/announcements/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// excludedKey holds the IDs dismissed for the rest of the session.
const excludedKey = "excluded_announcements"

func sessionExclusions(sess *session.Session) []uint {
	ids, _ := sess.Get(excludedKey).([]uint)
	return ids
}

// visitor identifies the requester from the auth middleware and its session.
func visitor(c *fiber.Ctx, store *session.Store) (domain.Visitor, *session.Session, error) {
	sess, err := store.Get(c)
	if err != nil {
		return domain.Visitor{}, nil, err
	}

	userID, _ := auth.UserID(c)
	return domain.Visitor{
		UserID:            userID,
		SessionExclusions: sessionExclusions(sess),
	}, sess, nil
}

// excludeForSession adds id to the session's exclusions and saves the session.
func excludeForSession(sess *session.Session, id uint) error {
	ids := sessionExclusions(sess)
	if !slices.Contains(ids, id) {
		sess.Set(excludedKey, append(slices.Clone(ids), id))
	}
	return sess.Save()
}
