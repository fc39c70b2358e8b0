package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/bvminh-dev/send-bird/internal/adapter/sendbird"
	"github.com/bvminh-dev/send-bird/internal/handler"
	"github.com/bvminh-dev/send-bird/internal/middleware"
	"github.com/bvminh-dev/send-bird/internal/service"
	"github.com/bvminh-dev/send-bird/pkg/config"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("🚀 Starting Sendbird gateway",
		"port", cfg.Port,
		"app_id", cfg.SendbirdAppID,
	)

	// ── Upstream client ──────────────────────────────────────────────────
	chat, err := sendbird.NewClient(cfg.SendbirdAppID, cfg.SendbirdAPIToken)
	if err != nil {
		slog.Error("failed to create sendbird client", "error", err)
		os.Exit(1)
	}

	// ── Services ─────────────────────────────────────────────────────────
	userService := service.NewUserService(chat)

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		ErrorHandler: handler.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New())
	app.Use(middleware.RequestLogger())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Split(cfg.AllowOrigins, ","),
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	// ── Routes ───────────────────────────────────────────────────────────
	healthHandler := handler.NewHealthHandler(cfg.AppName)
	healthHandler.Register(app)

	userHandler := handler.NewUserHandler(userService)
	userHandler.Register(app)

	// Catch-all, must be registered last
	app.Use(handler.NotFound)

	// ── Start ────────────────────────────────────────────────────────────
	slog.Info("🌐 Fiber listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
