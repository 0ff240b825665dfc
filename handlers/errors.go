package handlers

import (
	"errors"

	"racing-league/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Reason codes returned to the chat layer.
const (
	ReasonNotRegistered     = "not_registered"
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonVehicleNotFound   = "vehicle_not_found"
	ReasonChallengeNotFound = "challenge_not_found"
	ReasonSelfAccept        = "self_accept"
	ReasonBadRequest        = "bad_request"
	ReasonInternal          = "internal"
)

// respondError maps engine errors onto HTTP status + reason code.
func respondError(c *fiber.Ctx, err error) error {
	status, reason := fiber.StatusInternalServerError, ReasonInternal
	switch {
	case errors.Is(err, services.ErrNotRegistered):
		status, reason = fiber.StatusNotFound, ReasonNotRegistered
	case errors.Is(err, services.ErrInsufficientFunds):
		status, reason = fiber.StatusPaymentRequired, ReasonInsufficientFunds
	case errors.Is(err, services.ErrVehicleNotFound):
		status, reason = fiber.StatusNotFound, ReasonVehicleNotFound
	case errors.Is(err, services.ErrChallengeNotFound):
		status, reason = fiber.StatusGone, ReasonChallengeNotFound
	case errors.Is(err, services.ErrSelfAccept):
		status, reason = fiber.StatusConflict, ReasonSelfAccept
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("[HTTP] request failed")
		return c.Status(status).JSON(fiber.Map{
			"error":  "internal error",
			"reason": reason,
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error":  err.Error(),
		"reason": reason,
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  msg,
		"reason": ReasonBadRequest,
	})
}
