package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"siteapi/internal/auth"
	"siteapi/internal/config"
	"siteapi/internal/database"
	"siteapi/internal/database/migration"
	handlers "siteapi/internal/http/handler"
	"siteapi/internal/http/middleware"
	"siteapi/internal/otel"
	"siteapi/internal/repository/postgres"
	"siteapi/internal/service"
	"siteapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ctx := context.Background()

	// Initialize tracing (no-op when OTEL_SDK_DISABLED=true)
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Bootstrap schema and seed the admin account
	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	adminHash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}
	if err := migration.SeedAdmin(ctx, db, time.UTC, cfg.Admin.Username, cfg.Admin.Email, adminHash); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	// Select the CV storage backend
	var store storage.Storage
	switch cfg.Upload.Driver {
	case "s3":
		store, err = storage.NewMinIO(cfg.MinIO)
	default:
		store, err = storage.NewLocal(cfg.Upload.Dir)
	}
	if err != nil {
		log.Fatalf("failed to initialize upload storage: %v", err)
	}

	// Initialize repositories and services
	tokens := auth.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	deps := handlers.Deps{
		Auth:          service.NewAuthService(postgres.NewUserPostgres(db), tokens),
		Contacts:      service.NewContactService(postgres.NewContactPostgres(db)),
		Applications:  service.NewApplicationService(postgres.NewApplicationPostgres(db), store, storage.CVKey),
		Opportunities: service.NewOpportunityService(postgres.NewOpportunityPostgres(db)),
		Stats:         service.NewStatsService(postgres.NewStatsPostgres(db)),
		Tokens:        tokens,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Default 4MB body limit is below the CV cap; leave headroom for the
		// multipart framing around a 5MB file.
		BodyLimit: 8 << 20,
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())

	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, deps)

	// Serve stored CVs back under their persisted relative paths
	if cfg.Upload.Driver != "s3" {
		app.Static("/uploads", cfg.Upload.Dir)
	}

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
