package main

import (
	"context"
	"database/sql"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"foodkeeper/docs"
	"foodkeeper/internal/config"
	"foodkeeper/internal/database"
	"foodkeeper/internal/database/migration"
	handlers "foodkeeper/internal/http/handler"
	"foodkeeper/internal/http/middleware"
	"foodkeeper/internal/otel"
	"foodkeeper/internal/repository"
	"foodkeeper/internal/repository/memory"
	"foodkeeper/internal/repository/postgres"
	"foodkeeper/internal/service"
	"foodkeeper/internal/storage"
)

// @title FoodKeeper API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Persistence backend. Without DB_HOST the server keeps everything in
	// memory, seeded with the default storage locations.
	var (
		db       *sql.DB
		itemRepo repository.FoodItemRepository
		locRepo  repository.LocationRepository
		snapRepo repository.SnapshotRepository
	)
	if cfg.Database.Host != "" {
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		itemRepo = postgres.NewFoodItemPostgres(db)
		locRepo = postgres.NewLocationPostgres(db)
		snapRepo = postgres.NewSnapshotPostgres(db)
	} else {
		store := memory.NewStore()
		itemRepo = store.FoodItems()
		locRepo = store.Locations()
		snapRepo = store.Snapshots()
	}

	// Optional S3-compatible archive for dataset backups
	var archive storage.Storage
	if cfg.MinIO.Endpoint != "" {
		archive, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
	}

	itemSvc := service.NewFoodItemService(itemRepo)
	locSvc := service.NewLocationService(locRepo)
	transferSvc := service.NewTransferService(snapRepo, archive)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, itemSvc, locSvc, transferSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
