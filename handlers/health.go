package handlers

import (
	"racing-league/services"

	"github.com/gofiber/fiber/v2"
)

func SetupHealthRoutes(app *fiber.App, players *services.PlayerService, races *services.RaceService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		count, err := players.Count(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"error":  "database unavailable",
			})
		}
		return c.JSON(fiber.Map{
			"status":          "ok",
			"players":         count,
			"open_challenges": races.Challenges.Len(),
		})
	})
}
