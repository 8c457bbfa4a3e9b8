package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/samirrijal/fuelcalc/internal/core/domain"
)

// FuelByDistanceHandler estimates trip cost for a given distance.
func FuelByDistanceHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req domain.DistanceFuelRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}

		result, err := deps.Fuel.EstimateByDistance(c.UserContext(), req)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(result)
	}
}

// FuelByPointsHandler estimates trip cost between two coordinates.
func FuelByPointsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req domain.PointsFuelRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}

		result, err := deps.Fuel.EstimateByPoints(c.UserContext(), req)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(result)
	}
}

// DistanceByPointsHandler returns the great-circle distance between two coordinates.
func DistanceByPointsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req domain.PointPair
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}

		result, err := deps.Distance.Between(c.UserContext(), req)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(result)
	}
}
