package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	httpapi "github.com/i474232898/polar-plant-data/internal/api/http"
	"github.com/i474232898/polar-plant-data/internal/config"
	"github.com/i474232898/polar-plant-data/internal/logging"
	"github.com/i474232898/polar-plant-data/internal/plants"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)

	// The dataset is fixed at construction and shared by all handlers.
	provider := plants.NewPlantDataProvider()

	app := fiber.New(fiber.Config{
		AppName:               "polar-plant-data",
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpapi.RequestLogger())
	app.Use(recover.New())
	app.Use(etag.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "polar-plant-data",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, provider, cfg.CacheMaxAge)

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Int("samples", len(provider.Samples())).
			Msg("Web server started")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("Fiber server stopped")
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
}
