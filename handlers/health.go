package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/todo-graphql-api/database"
	"github.com/sahilchouksey/todo-graphql-api/utils/response"
)

// HealthCheck reports whether the service and its database are reachable
func HealthCheck(c *fiber.Ctx, store database.Storage) error {
	if err := store.HealthCheck(); err != nil {
		return response.ServiceUnavailable(c, "database unreachable")
	}

	return response.Success(c, fiber.Map{
		"status": "ok",
	})
}
