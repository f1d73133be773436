package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"merchant-dashboard-backend/config"
	"merchant-dashboard-backend/database"
	_ "merchant-dashboard-backend/docs" // Register generated docs
	"merchant-dashboard-backend/routes"
	"merchant-dashboard-backend/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title Merchant Dashboard API Documentation
// @version 1.0
// @description API for managing restaurant storefronts, menus, QR codes and the merchant profile

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8040
// @BasePath /
// @schemes http https

// matchOriginPattern checks if an origin matches a pattern with a single wildcard
func matchOriginPattern(pattern, origin string) bool {
	if !strings.Contains(pattern, "*") {
		return false
	}

	// Split by wildcard
	parts := strings.Split(pattern, "*")
	if len(parts) != 2 {
		return false
	}

	// Check if origin starts with the part before * and ends with the part after *
	return strings.HasPrefix(origin, parts[0]) && strings.HasSuffix(origin, parts[1])
}

func corsConfig(origins []string) cors.Config {
	corsConfig := cors.Config{
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "Content-Disposition"},
		MaxAge:        86400, // 24 hours
	}

	// If origins contain wildcard, don't use credentials
	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowOrigins = []string{"*"}
		corsConfig.AllowCredentials = false
		return corsConfig
	}

	corsConfig.AllowOriginsFunc = func(origin string) bool {
		for _, allowedOrigin := range origins {
			// Exact match
			if origin == allowedOrigin {
				return true
			}
			// Pattern match (e.g., http://192.168.41.*:8081)
			if matchOriginPattern(allowedOrigin, origin) {
				return true
			}
		}
		return false
	}
	corsConfig.AllowCredentials = true
	return corsConfig
}

func newSuggester(cfg *config.Config, zl *zap.Logger) *utils.Suggester {
	if cfg.GeminiAPIKey == "" {
		zl.Warn("GEMINI_API_KEY not set, menu suggestions will use placeholder text")
		return utils.NewSuggester(nil, cfg.SuggestionTimeout, zl)
	}

	generator, err := utils.NewGenAIGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		zl.Error("Failed to initialize suggestion client, using placeholder text", zap.Error(err))
		return utils.NewSuggester(nil, cfg.SuggestionTimeout, zl)
	}
	return utils.NewSuggester(generator, cfg.SuggestionTimeout, zl)
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := config.LoadConfig()

	zl, err := utils.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	// Initialize catalog
	seed := database.EmptySeed()
	if cfg.SeedDemoData {
		seed = database.DefaultSeed(time.Now())
	}
	catalog := database.NewCatalog(seed)
	zl.Info("Catalog initialized",
		zap.Int("stores", catalog.CountStores()),
		zap.Bool("demoData", cfg.SeedDemoData))

	suggester := newSuggester(cfg, zl)

	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return c.Status(code).JSON(utils.ErrorResponse{
				Success: false,
				Error:   err.Error(),
			})
		},
		AppName:      cfg.AppName,
		ServerHeader: "Fiber",
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(corsConfig(cfg.CorsOrigins)))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 60 * time.Second,
	}))

	// Setup routes
	routes.SetupRoutes(app, cfg, catalog, suggester)

	zl.Info("Server ready",
		zap.String("port", cfg.Port),
		zap.String("health", cfg.AppUrl+"/api/health"),
		zap.String("docs", cfg.AppUrl+"/rapidoc"))

	if err := app.Listen(":" + cfg.Port); err != nil {
		zl.Fatal("Failed to start server", zap.Error(err))
	}
}
