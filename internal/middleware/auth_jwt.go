package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWT validates a bearer token when one is present and stores the uid in
// Locals. Requests without a header pass through anonymous; RequireAuth
// gates the routes that need an identity.
func JWT(secret string) fiber.Handler {
	key := []byte(secret)

	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims jwt.RegisteredClaims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, fiber.ErrUnauthorized
				}
				return key, nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid || claims.Subject == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals("user_id", claims.Subject)
		return c.Next()
	}
}

// UserIDFrom reads the uid a successful JWT parse left in Locals.
func UserIDFrom(c *fiber.Ctx) (string, bool) {
	uid, _ := c.Locals("user_id").(string)
	return uid, uid != ""
}
