package server

import (
	"errors"
	"fmt"

	"site-announcements/internal/core/config"
	"site-announcements/internal/core/logger"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"go.uber.org/zap"

	_ "site-announcements/docs/swagger"
)

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// Sessions is the visitor session store.
	Sessions *session.Store
	// cfg holds the application configuration.
	cfg *config.AppConfig
}

// New creates a new Server instance with configured middleware.
// Sessions are kept in storage; nil keeps them in process memory.
func New(cfg *config.AppConfig, storage fiber.Storage) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "site-announcements",
		ErrorHandler:          errorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	sessionCfg := session.Config{
		Storage:        storage,
		Expiration:     cfg.Session.Expiration,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		CookieSecure:   cfg.Environment == "production",
		KeyGenerator:   uuid.NewString,
	}
	if cfg.Session.CookieName != "" {
		sessionCfg.KeyLookup = "cookie:" + cfg.Session.CookieName
	}

	return &Server{
		App:      app,
		Sessions: session.New(sessionCfg),
		cfg:      cfg,
	}
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

// errorResponse mirrors the handlers' JSON error body.
type errorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id,omitempty"`
}

// errorHandler renders errors that escape handlers and middleware as JSON.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		logger.Get().Error("Unhandled error", zap.Error(err), zap.String("path", c.Path()))
	}

	rayID, _ := c.Locals("requestid").(string)
	return c.Status(code).JSON(errorResponse{
		Message: message,
		RayID:   rayID,
	})
}
