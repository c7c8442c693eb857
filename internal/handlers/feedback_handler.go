package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"prayershare/dto"
	"prayershare/internal/repository"
)

type FeedbackHandler struct {
	Feedback *repository.FeedbackRepository
}

// Submit godoc
// @Summary Queue a feedback email
// @Tags feedback
// @Accept json
// @Router /feedback [post]
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	var body dto.FeedbackRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}
	if strings.TrimSpace(body.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "message is required", Field: "message"})
	}
	if body.Subject == "" {
		body.Subject = "Feedback"
	}

	if err := h.Feedback.Submit(c.Context(), body.Subject, body.Message, body.ReplyTo); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}
