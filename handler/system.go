package handler

import (
	"academy_manager/database"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Health reports which backing services are reachable. The process keeps
// serving in degraded mode when the database is down, so the endpoint answers
// 200 with detail instead of failing outright.
func Health(c *fiber.Ctx) error {
	details := fiber.Map{
		"database": "unavailable",
		"redis":    "unavailable",
	}
	status := "degraded"

	if database.Available() {
		details["database"] = "available"
		status = "ok"
	}

	if redisClient != nil {
		ctx, cancel := context.WithTimeout(c.Context(), time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err == nil {
			details["redis"] = "available"
		}
	}

	return c.JSON(fiber.Map{
		"status":  status,
		"details": details,
	})
}
