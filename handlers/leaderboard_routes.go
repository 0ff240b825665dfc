// handlers/leaderboard_routes.go
package handlers

import (
	"racing-league/services"

	"github.com/gofiber/fiber/v2"
)

func SetupLeaderboardRoutes(app *fiber.App, players *services.PlayerService, defaultSize int) {
	app.Get("/leaderboard", func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", defaultSize)
		if limit < 1 || limit > 100 {
			limit = defaultSize
		}
		entries, err := players.LeaderboardEntries(c.UserContext(), limit)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"entries": entries})
	})
}
