package handler

import (
	"errors"
	"net/http"
	"time"

	"site-announcements/internal/core/auth"
	"site-announcements/internal/core/logger"
	"site-announcements/internal/features/announcements/domain"
	"site-announcements/internal/features/announcements/ports"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var validate = validator.New()

// AnnouncementRequest is the body of admin create and update requests.
type AnnouncementRequest struct {
	Title         string               `json:"title" validate:"required,max=50"`
	Content       string               `json:"content" validate:"required"`
	SiteWide      bool                 `json:"site_wide"`
	MembersOnly   bool                 `json:"members_only"`
	DismissalType domain.DismissalType `json:"dismissal_type" validate:"omitempty,oneof=1 2 3"`
	PublishStart  *time.Time           `json:"publish_start"`
	PublishEnd    *time.Time           `json:"publish_end"`
}

func (r *AnnouncementRequest) announcement() *domain.Announcement {
	a := &domain.Announcement{
		Title:         r.Title,
		Content:       r.Content,
		SiteWide:      r.SiteWide,
		MembersOnly:   r.MembersOnly,
		DismissalType: r.DismissalType,
		PublishEnd:    r.PublishEnd,
	}
	if r.PublishStart != nil {
		a.PublishStart = *r.PublishStart
	}
	return a
}

// AdminHandler handles the staff-only announcement management endpoints.
type AdminHandler struct {
	service ports.AnnouncementService
	urls    domain.URLReverser
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service ports.AnnouncementService, urls domain.URLReverser) *AdminHandler {
	return &AdminHandler{
		service: service,
		urls:    urls,
	}
}

// List handles GET /admin/announcements.
// @Summary List all announcements
// @Description Returns every announcement, newest first.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AnnouncementResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/announcements [get]
func (h *AdminHandler) List(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to list announcements", zap.Error(err), zap.String("ray_id", rayID(c)))
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}

	resp, err := newAnnouncementResponses(list, h.urls, requestLanguage(c))
	if err != nil {
		logger.Get().Error("Failed to build announcement URLs", zap.Error(err))
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(resp)
}

// Create handles POST /admin/announcements.
// @Summary Create an announcement
// @Description Creates an announcement owned by the calling staff user.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param announcement body AnnouncementRequest true "Announcement"
// @Success 201 {object} AnnouncementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/announcements [post]
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	req, err := parseRequest(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	a := req.announcement()
	a.CreatorID, _ = auth.UserID(c)

	if err := h.service.Create(c.UserContext(), a); err != nil {
		return h.writeError(c, "Failed to create announcement", err)
	}
	return h.respond(c, http.StatusCreated, a)
}

// Update handles PUT /admin/announcements/:id.
// @Summary Update an announcement
// @Description Replaces the editable fields of an announcement.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Param announcement body AnnouncementRequest true "Announcement"
// @Success 200 {object} AnnouncementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/announcements/{id} [put]
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, err := announcementID(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid announcement id")
	}

	req, err := parseRequest(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	a := req.announcement()
	a.ID = id
	if a.DismissalType == 0 {
		a.DismissalType = domain.DismissalSession
	}

	if err := h.service.Update(c.UserContext(), a); err != nil {
		return h.writeError(c, "Failed to update announcement", err)
	}
	return h.respond(c, http.StatusOK, a)
}

// Delete handles DELETE /admin/announcements/:id.
// @Summary Delete an announcement
// @Description Deletes an announcement and every dismissal of it.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/announcements/{id} [delete]
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, err := announcementID(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid announcement id")
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return h.writeError(c, "Failed to delete announcement", err)
	}
	return c.JSON(MessageResponse{Message: "Announcement deleted"})
}

func parseRequest(c *fiber.Ctx) (*AnnouncementRequest, error) {
	var req AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.New("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (h *AdminHandler) respond(c *fiber.Ctx, status int, a *domain.Announcement) error {
	resp, err := newAnnouncementResponse(a, h.urls, requestLanguage(c))
	if err != nil {
		logger.Get().Error("Failed to build announcement URLs", zap.Error(err))
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.Status(status).JSON(resp)
}

func (h *AdminHandler) writeError(c *fiber.Ctx, msg string, err error) error {
	switch {
	case errors.Is(err, domain.ErrAnnouncementNotFound):
		return errorJSON(c, http.StatusNotFound, "announcement not found")
	case errors.Is(err, domain.ErrInvalidAnnouncement), errors.Is(err, domain.ErrInvalidDismissalType):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	logger.Get().Error(msg, zap.Error(err), zap.String("ray_id", rayID(c)))
	return errorJSON(c, http.StatusInternalServerError, "Internal server error")
}
