// handlers/player_routes.go
package handlers

import (
	"racing-league/middleware"
	"racing-league/models"
	"racing-league/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPlayerRoutes(app *fiber.App, players *services.PlayerService, races *services.RaceService) {
	user := middleware.UserContextMiddleware()

	// Idempotent: registering twice returns the existing record.
	app.Post("/players", user, func(c *fiber.Ctx) error {
		player, err := players.Register(c.UserContext(), middleware.UserID(c), middleware.UserName(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(profile(players.Catalog, player))
	})

	app.Get("/players/me", user, func(c *fiber.Ctx) error {
		player, err := players.Get(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(profile(players.Catalog, player))
	})

	app.Get("/players/me/races", user, func(c *fiber.Ctx) error {
		userID := middleware.UserID(c)
		if _, err := players.Get(c.UserContext(), userID); err != nil {
			return respondError(c, err)
		}
		history, err := races.RecentRaces(c.UserContext(), userID, c.QueryInt("days", 7))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"races": history})
	})
}

func profile(catalog *services.Catalog, p *models.Player) fiber.Map {
	return fiber.Map{
		"player":                p,
		"vehicle":               catalog.LookupOrDefault(p.VehicleID),
		"next_level_experience": services.ExperienceForNextLevel(p.Level),
		"total_wins":            p.TotalWins(),
		"total_races":           p.TotalRaces(),
		"win_rate":              p.WinRate(),
	}
}
