package handlers

import (
	"github.com/gofiber/fiber/v2"

	"prayershare/internal/middleware"
)

// WhoAmI echoes the authenticated uid.
func WhoAmI(c *fiber.Ctx) error {
	uid, _ := middleware.UserIDFrom(c)
	return c.JSON(fiber.Map{"userId": uid})
}
