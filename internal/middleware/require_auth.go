package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireAuth rejects requests whose JWT middleware left no uid behind.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := UserIDFrom(c); !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}
