package handler

import (
	"github.com/gofiber/fiber/v2"

	"siteapi/internal/service"
)

// GetStats returns the dashboard aggregate, recomputed on every call.
func GetStats(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.GetStats(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(stats)
	}
}
