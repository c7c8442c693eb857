package handlers

import (
	"github.com/gofiber/fiber/v2"

	"prayershare/dto"
	"prayershare/internal/middleware"
	"prayershare/services"
)

type ReactionHandler struct {
	Ledger *services.Ledger
}

// React godoc
// @Summary Pray/praise on a post (idempotent)
// @Tags reactions
// @Produce json
// @Router /posts/{kind}/{postId}/reactions [post]
func (h *ReactionHandler) React(c *fiber.Ctx) error {
	uid, _ := middleware.UserIDFrom(c)

	kind, err := kindParam(c)
	if err != nil {
		return err
	}
	id, err := postIDParam(c)
	if err != nil {
		return err
	}

	if err := h.Ledger.React(c.Context(), kind, id, uid); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReactionStateResponse{PostID: id.Hex(), Reacted: true})
}

// Unreact godoc
// @Summary Remove a reaction (no-op when absent)
// @Tags reactions
// @Produce json
// @Router /posts/{kind}/{postId}/reactions [delete]
func (h *ReactionHandler) Unreact(c *fiber.Ctx) error {
	uid, _ := middleware.UserIDFrom(c)

	kind, err := kindParam(c)
	if err != nil {
		return err
	}
	id, err := postIDParam(c)
	if err != nil {
		return err
	}

	if err := h.Ledger.Unreact(c.Context(), kind, id, uid); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ReactionStateResponse{PostID: id.Hex(), Reacted: false})
}

// State godoc
// @Summary Whether the viewer reacted on a post
// @Tags reactions
// @Produce json
// @Router /posts/{kind}/{postId}/reactions/me [get]
func (h *ReactionHandler) State(c *fiber.Ctx) error {
	uid, _ := middleware.UserIDFrom(c)

	kind, err := kindParam(c)
	if err != nil {
		return err
	}
	id, err := postIDParam(c)
	if err != nil {
		return err
	}

	reacted, err := h.Ledger.HasReacted(c.Context(), kind, id, uid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ReactionStateResponse{PostID: id.Hex(), Reacted: reacted})
}
