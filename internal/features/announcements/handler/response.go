package handler

import (
	"time"

	"site-announcements/internal/features/announcements/domain"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// MessageResponse acknowledges a write.
type MessageResponse struct {
	Message string `json:"message"`
}

// DismissResponse reports which dismissal policy was applied.
type DismissResponse struct {
	Message       string               `json:"message"`
	DismissalType domain.DismissalType `json:"dismissal_type"`
}

// AnnouncementResponse is an announcement as exposed over the API.
type AnnouncementResponse struct {
	ID             uint                 `json:"id"`
	Title          string               `json:"title"`
	Content        string               `json:"content"`
	CreatorID      uint                 `json:"creator_id"`
	CreationDate   time.Time            `json:"creation_date"`
	SiteWide       bool                 `json:"site_wide"`
	MembersOnly    bool                 `json:"members_only"`
	DismissalType  domain.DismissalType `json:"dismissal_type"`
	DismissalLabel string               `json:"dismissal_label"`
	PublishStart   time.Time            `json:"publish_start"`
	PublishEnd     *time.Time           `json:"publish_end"`
	URL            string               `json:"url"`
	DismissURL     string               `json:"dismiss_url,omitempty"`
}

func newAnnouncementResponse(a *domain.Announcement, r domain.URLReverser, lang language.Tag) (AnnouncementResponse, error) {
	detail, err := a.AbsoluteURL(r)
	if err != nil {
		return AnnouncementResponse{}, err
	}
	dismiss, err := a.DismissURL(r)
	if err != nil {
		return AnnouncementResponse{}, err
	}

	return AnnouncementResponse{
		ID:             a.ID,
		Title:          a.Title,
		Content:        a.Content,
		CreatorID:      a.CreatorID,
		CreationDate:   a.CreationDate,
		SiteWide:       a.SiteWide,
		MembersOnly:    a.MembersOnly,
		DismissalType:  a.DismissalType,
		DismissalLabel: a.DismissalType.Label(lang),
		PublishStart:   a.PublishStart,
		PublishEnd:     a.PublishEnd,
		URL:            detail,
		DismissURL:     dismiss,
	}, nil
}

func newAnnouncementResponses(list []domain.Announcement, r domain.URLReverser, lang language.Tag) ([]AnnouncementResponse, error) {
	out := make([]AnnouncementResponse, 0, len(list))
	for i := range list {
		resp, err := newAnnouncementResponse(&list[i], r, lang)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   rayID(c),
	})
}

func requestLanguage(c *fiber.Ctx) language.Tag {
	return domain.MatchLanguage(c.Get(fiber.HeaderAcceptLanguage))
}
