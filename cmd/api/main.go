package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"sekolah-branding/internal/config"
	"sekolah-branding/internal/handler"
	"sekolah-branding/internal/middleware"
	"sekolah-branding/internal/pkg/catalog"
	"sekolah-branding/internal/pkg/rescache"
	"sekolah-branding/internal/repository"
	"sekolah-branding/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v (cross-instance invalidation disabled)", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	cache := rescache.New(cfg.CacheTTL)
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, cache, cfg)
	handlers := handler.NewHandlers(services)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.ListenInvalidations(ctx, redisClient, cache)

	seedCatalog(ctx, cfg, services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Tenant-ID",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, cache)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, cache *rescache.Cache) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "cache_entries": cache.Len()})
	})

	v1 := app.Group("/api/v1", middleware.TenantRequired())

	translations := v1.Group("/translations")
	translations.Get("/:locale", h.Translation.Get)
	translations.Put("/:locale", h.Translation.Update)
	translations.Post("/:locale/resolve/:key", h.Translation.Resolve)
	translations.Get("/:locale/missing", h.Translation.Missing)
	translations.Post("/:locale/overrides/:priority", h.Translation.AddOverrides)
	translations.Delete("/:locale/overrides/:priority", h.Translation.RemoveOverrides)
	translations.Get("/:locale/export", h.Translation.Export)
	translations.Post("/:locale/import", h.Translation.Import)

	locales := v1.Group("/locales")
	locales.Get("/", h.Locale.List)
	locales.Get("/:code", h.Locale.Get)
	locales.Post("/", h.Locale.Register)

	themes := v1.Group("/themes")
	themes.Get("/", h.Theme.List)
	themes.Post("/", h.Theme.Save)
	themes.Post("/validate", h.Theme.Validate)
	themes.Get("/:themeId", h.Theme.Get)
	themes.Post("/:themeId/compose", h.Theme.Compose)
}

// seedCatalog fills the default tenant's base translations from the
// bundled locale files. Existing keys are never overwritten.
func seedCatalog(ctx context.Context, cfg *config.Config, services *service.Services) {
	if cfg.DefaultTenantID == "" {
		return
	}
	tenantID, err := uuid.Parse(cfg.DefaultTenantID)
	if err != nil {
		log.Printf("Warning: DEFAULT_TENANT_ID is not a UUID, skipping catalog seed")
		return
	}

	seeds, err := catalog.Load(cfg.LocalesPath)
	if err != nil {
		log.Printf("Warning: Failed to load seed catalog from %s: %v", cfg.LocalesPath, err)
		return
	}

	for locale, strings := range seeds {
		result, err := services.Resolver.SeedTranslations(ctx, tenantID, locale, strings)
		if err != nil {
			log.Printf("Warning: Failed to seed %s translations: %v", locale, err)
			continue
		}
		if result.UpdatedKeys > 0 {
			log.Printf("Seeded %d %s translations", result.UpdatedKeys, locale)
		}
	}
}
