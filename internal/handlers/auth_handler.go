package handlers

import (
	"github.com/gofiber/fiber/v2"

	"prayershare/dto"
	"prayershare/services"
)

type AuthHandler struct {
	Auth *services.Auth
}

// Signup godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var body dto.SignupRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	u, err := h.Auth.SignUp(c.Context(), body.Email, body.Password)
	if err != nil {
		return writeError(c, err)
	}

	token, _, err := h.Auth.SignIn(c.Context(), body.Email, body.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.TokenResponse{
		Token:         token,
		UserID:        u.ID,
		SetupRequired: true,
	})
}

// Signin godoc
// @Summary Exchange credentials for a token
// @Tags auth
// @Accept json
// @Produce json
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var body dto.SigninRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	token, u, err := h.Auth.SignIn(c.Context(), body.Email, body.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.TokenResponse{
		Token:         token,
		UserID:        u.ID,
		SetupRequired: u.SetupRequired(),
	})
}
