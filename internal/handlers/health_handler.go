package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"message":   "FitZone API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
