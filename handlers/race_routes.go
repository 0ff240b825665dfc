// handlers/race_routes.go
package handlers

import (
	"racing-league/middleware"
	"racing-league/models"
	"racing-league/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRaceRoutes(app *fiber.App, races *services.RaceService) {
	user := middleware.UserContextMiddleware()

	app.Post("/races/pve", user, func(c *fiber.Ctx) error {
		outcome, err := races.RacePvE(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(outcome)
	})

	app.Post("/challenges", user, func(c *fiber.Ctx) error {
		var loc models.Location
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&loc); err != nil {
				return badRequest(c, "invalid JSON body")
			}
		}

		ticket, err := races.CreateChallenge(c.UserContext(), middleware.UserID(c), middleware.UserName(c), loc)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(ticket)
	})

	app.Get("/challenges/:id", func(c *fiber.Ctx) error {
		ch, ok := races.Challenges.Get(c.Params("id"))
		if !ok {
			return respondError(c, services.ErrChallengeNotFound)
		}
		return c.JSON(fiber.Map{
			"challenge":  ch,
			"vehicle":    races.Catalog.LookupOrDefault(ch.ChallengerVehicleID),
			"expires_at": ch.ExpiresAt(races.Challenges.TTL()),
		})
	})

	app.Post("/challenges/:id/accept", user, func(c *fiber.Ctx) error {
		outcome, err := races.AcceptChallenge(c.UserContext(), c.Params("id"), middleware.UserID(c), middleware.UserName(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(outcome)
	})
}
