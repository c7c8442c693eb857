package handlers

import (
	"github.com/gofiber/fiber/v2"

	"prayershare/dto"
	"prayershare/internal/middleware"
	"prayershare/services"
)

type NotificationHandler struct {
	Classifier *services.Classifier
}

// List godoc
// @Summary Day-bucketed notifications for the viewer
// @Tags notifications
// @Produce json
// @Param ack query bool false "mark delivered notifications viewed"
// @Router /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	uid, _ := middleware.UserIDFrom(c)
	ack := c.QueryBool("ack", false)

	feed, err := h.Classifier.BuildFeed(c.Context(), uid, ack)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewNotificationFeedResponse(feed))
}
