// handlers/garage_routes.go
package handlers

import (
	"strconv"

	"racing-league/middleware"
	"racing-league/services"

	"github.com/gofiber/fiber/v2"
)

func SetupGarageRoutes(app *fiber.App, players *services.PlayerService) {
	catalog := players.Catalog

	app.Get("/vehicles", func(c *fiber.Ctx) error {
		return c.JSON(catalog.All())
	})

	// :ref is a numeric id or a slug such as "street-racer"
	app.Get("/vehicles/:ref", func(c *fiber.Ctx) error {
		ref := c.Params("ref")
		if id, err := strconv.Atoi(ref); err == nil {
			v, err := catalog.Lookup(id)
			if err != nil {
				return respondError(c, err)
			}
			return c.JSON(v)
		}
		v, err := catalog.BySlug(ref)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(v)
	})

	app.Post("/vehicles/:id/purchase", middleware.UserContextMiddleware(), func(c *fiber.Ctx) error {
		vehicleID, err := c.ParamsInt("id")
		if err != nil {
			return badRequest(c, "vehicle id must be an integer")
		}

		player, err := players.PurchaseVehicle(c.UserContext(), middleware.UserID(c), vehicleID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{
			"message": "vehicle purchased",
			"vehicle": catalog.LookupOrDefault(player.VehicleID),
			"balance": player.Balance,
		})
	})
}
