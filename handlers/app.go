package handlers

import (
	"strings"

	"racing-league/middleware"
	"racing-league/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// AppConfig carries the HTTP-level settings.
type AppConfig struct {
	ServiceToken    string
	AllowedOrigins  []string
	LeaderboardSize int
}

// NewApp wires middleware and every engine route onto a fresh fiber app.
func NewApp(cfg AppConfig, players *services.PlayerService, races *services.RaceService) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "racing-league",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestIDMiddleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID, X-User-ID, X-User-Name",
		MaxAge:       86400,
	}))

	// Health stays reachable without the gateway token.
	SetupHealthRoutes(app, players, races)

	// 🔐❗ Everything below requires the gateway token
	app.Use(middleware.GatewayAuthMiddleware(cfg.ServiceToken))

	SetupGarageRoutes(app, players)
	SetupPlayerRoutes(app, players, races)
	SetupRaceRoutes(app, races)
	SetupLeaderboardRoutes(app, players, cfg.LeaderboardSize)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
