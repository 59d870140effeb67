package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studentbridge/buddydesk/internal/models"
	"github.com/studentbridge/buddydesk/internal/services"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// apiDenied renders an authorization Decision; the reason travels to the
// end user.
func apiDenied(c *fiber.Ctx, decision services.Decision) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error":  "forbidden",
		"reason": decision.Reason,
	})
}

func anyFieldTooLong(values ...string) bool {
	for _, value := range values {
		if len(value) > maxFieldLength {
			return true
		}
	}
	return false
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
