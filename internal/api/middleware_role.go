package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studentbridge/buddydesk/internal/models"
)

// RequireRole gates a route to users at or above the given role.
func (handler *Handler) RequireRole(minimum models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := currentUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		if !user.Role.AtLeast(minimum) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":  "forbidden",
				"reason": minimum.Label() + " access required",
			})
		}
		return c.Next()
	}
}
