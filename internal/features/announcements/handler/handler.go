package handler

import (
	"bytes"
	_ "embed"
	"errors"
	"html/template"
	"net/http"

	"site-announcements/internal/core/auth"
	"site-announcements/internal/core/logger"
	"site-announcements/internal/core/tmpl"
	"site-announcements/internal/features/announcements/domain"
	"site-announcements/internal/features/announcements/ports"
	"site-announcements/internal/features/announcements/templatetags"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed templates/page.html
var pageSource string

const labelFn = "dismissal_label"

// NewPageTemplate parses the announcements page with lib, which must have the
// announcements tag registered.
func NewPageTemplate(lib *tmpl.Library) (*template.Template, error) {
	lib.Funcs(template.FuncMap{
		labelFn: func(t domain.DismissalType) string { return t.Label(language.English) },
	})
	return lib.Parse("page.html", pageSource)
}

// AnnouncementHandler handles the public announcement endpoints.
type AnnouncementHandler struct {
	service  ports.AnnouncementService
	sessions *session.Store
	urls     domain.URLReverser
	page     *template.Template
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(
	service ports.AnnouncementService,
	sessions *session.Store,
	urls domain.URLReverser,
	page *template.Template,
) *AnnouncementHandler {
	return &AnnouncementHandler{
		service:  service,
		sessions: sessions,
		urls:     urls,
		page:     page,
	}
}

// Page handles GET /.
// @Summary Announcements page
// @Description Renders the current announcements for the visitor as HTML.
// @Tags announcements
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 500 {object} ErrorResponse
// @Router / [get]
func (h *AnnouncementHandler) Page(c *fiber.Ctx) error {
	v, _, err := visitor(c, h.sessions)
	if err != nil {
		logger.Get().Error("Failed to load session", zap.Error(err), zap.String("ray_id", rayID(c)))
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}

	lang := requestLanguage(c)
	funcs := templatetags.Bind(c.UserContext(), h.service, v)
	funcs[labelFn] = func(t domain.DismissalType) string { return t.Label(lang) }

	var buf bytes.Buffer
	data := fiber.Map{"Lang": lang.String()}
	if err := tmpl.Execute(h.page, &buf, data, funcs); err != nil {
		logger.Get().Error("Failed to render announcements page", zap.Error(err), zap.String("ray_id", rayID(c)))
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// List handles GET /announcements.
// @Summary List current announcements
// @Description Returns the current site-wide announcements the visitor has not dismissed.
// @Tags announcements
// @Produce json
// @Param Accept-Language header string false "Language of the dismissal labels"
// @Success 200 {array} AnnouncementResponse
// @Failure 500 {object} ErrorResponse
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	v, _, err := visitor(c, h.sessions)
	if err != nil {
		logger.Get().Error("Failed to load session", zap.Error(err), zap.String("ray_id", rayID(c)))
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}

	list, err := h.service.VisibleFor(c.UserContext(), v)
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

// Detail handles GET /announcements/:id.
// @Summary Get an announcement
// @Description Returns one announcement. Members-only announcements are hidden from anonymous visitors.
// @Tags announcements
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} AnnouncementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /announcements/{id} [get]
func (h *AnnouncementHandler) Detail(c *fiber.Ctx) error {
	id, err := announcementID(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid announcement id")
	}

	userID, _ := auth.UserID(c)
	a, err := h.service.Get(c.UserContext(), id, domain.Visitor{UserID: userID})
	if err != nil {
		if errors.Is(err, domain.ErrAnnouncementNotFound) {
			return errorJSON(c, http.StatusNotFound, "announcement not found")
		}
		logger.Get().Error("Failed to get announcement", zap.Error(err), zap.String("ray_id", rayID(c)))
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}

	resp, err := newAnnouncementResponse(a, h.urls, requestLanguage(c))
	if err != nil {
		logger.Get().Error("Failed to build announcement URLs", zap.Error(err))
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(resp)
}

// Dismiss handles POST /announcements/:id/dismiss.
// @Summary Dismiss an announcement
// @Description Hides the announcement for the session, or permanently for signed in users, depending on its dismissal type.
// @Tags announcements
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} DismissResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /announcements/{id}/dismiss [post]
func (h *AnnouncementHandler) Dismiss(c *fiber.Ctx) error {
	id, err := announcementID(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid announcement id")
	}

	v, sess, err := visitor(c, h.sessions)
	if err != nil {
		logger.Get().Error("Failed to load session", zap.Error(err), zap.String("ray_id", rayID(c)))
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}

	policy, err := h.service.Dismiss(c.UserContext(), id, v)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAnnouncementNotFound):
			return errorJSON(c, http.StatusNotFound, "announcement not found")
		case errors.Is(err, domain.ErrDismissalNotAllowed):
			return errorJSON(c, http.StatusConflict, "announcement cannot be dismissed")
		}
		logger.Get().Error("Failed to dismiss announcement", zap.Error(err), zap.String("ray_id", rayID(c)))
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}

	if policy == domain.DismissalSession {
		if err := excludeForSession(sess, id); err != nil {
			logger.Get().Error("Failed to save session", zap.Error(err), zap.String("ray_id", rayID(c)))
			return errorJSON(c, http.StatusInternalServerError, "Internal server error")
		}
	}

	return c.JSON(DismissResponse{
		Message:       "Announcement dismissed",
		DismissalType: policy,
	})
}

func announcementID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return uint(id), nil
}
