package main

import (
	"context"
	"log"
	"time"

	"site-announcements/internal/core/auth"
	"site-announcements/internal/core/cache"
	"site-announcements/internal/core/config"
	"site-announcements/internal/core/database"
	"site-announcements/internal/core/logger"
	"site-announcements/internal/core/server"
	"site-announcements/internal/core/tmpl"
	"site-announcements/internal/core/urls"
	"site-announcements/internal/features/announcements/adapters"
	"site-announcements/internal/features/announcements/domain"
	"site-announcements/internal/features/announcements/handler"
	"site-announcements/internal/features/announcements/service"
	"site-announcements/internal/features/announcements/templatetags"

	"go.uber.org/zap"
)

const startupTimeout = 10 * time.Second

// @title Site Announcements API
// @version 1.0
// @description Timed, dismissible site announcements with per-visitor filtering.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithFile(cfg.Environment, cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("db_driver", cfg.Database.Driver),
	)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	// Database
	db, err := database.Open(cfg.Database)
	if err != nil {
		l.Fatal("Failed to open database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.Ping(ctx, db); err != nil {
		l.Fatal("Database Health Check Failed", zap.Error(err))
	}
	if cfg.Database.AutoMigrate {
		if err := adapters.AutoMigrate(db); err != nil {
			l.Fatal("Schema migration failed", zap.Error(err))
		}
		l.Info("Schema migrated")
	}

	// Cache
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisCache.Close()

	if err := redisCache.Ping(ctx); err != nil {
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	l.Info("Database and Redis connections verified")

	// Announcements
	announcementRepo := adapters.NewGormAnnouncementRepository(db)
	dismissalRepo := adapters.NewGormDismissalRepository(db)

	current := cache.NewMemo[[]domain.Announcement, *domain.Announcement](redisCache, service.NewCurrentQuery(announcementRepo))
	announcementRepo.AddObserver(current)

	announcementSvc := service.NewAnnouncementService(announcementRepo, dismissalRepo, current)

	// HTTP
	srv := server.New(cfg, cache.NewSessionStorage(redisCache, "session:"))
	srv.App.Use(auth.NewAuthenticator(cfg.Auth.JWTSecret).Middleware())

	reverser := urls.NewReverser(srv.App)
	tags := tmpl.NewLibrary()
	templatetags.Register(tags, reverser)
	page, err := handler.NewPageTemplate(tags)
	if err != nil {
		l.Fatal("Failed to parse page template", zap.Error(err))
	}

	announcementHdl := handler.NewAnnouncementHandler(announcementSvc, srv.Sessions, reverser, page)
	adminHdl := handler.NewAdminHandler(announcementSvc, reverser)

	// Register Routes
	srv.App.Get("/", announcementHdl.Page).Name("announcements_page")
	srv.App.Get("/announcements", announcementHdl.List).Name("announcements_list")
	srv.App.Get("/announcements/:id", announcementHdl.Detail).Name(domain.RouteDetail)
	srv.App.Post("/announcements/:id/dismiss", announcementHdl.Dismiss).Name(domain.RouteDismiss)

	admin := srv.App.Group("/admin", auth.RequireStaff())
	admin.Get("/announcements", adminHdl.List)
	admin.Post("/announcements", adminHdl.Create)
	admin.Put("/announcements/:id", adminHdl.Update)
	admin.Delete("/announcements/:id", adminHdl.Delete)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
