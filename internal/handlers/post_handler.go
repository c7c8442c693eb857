package handlers

import (
	"github.com/gofiber/fiber/v2"

	"prayershare/dto"
	"prayershare/internal/middleware"
	"prayershare/model"
	"prayershare/services"
)

type PostHandler struct {
	Posts    *services.Posts
	Profiles services.ProfileResolver
}

// Create godoc
// @Summary Create a request or testimony
// @Tags posts
// @Accept json
// @Produce json
// @Router /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	uid, _ := middleware.UserIDFrom(c)

	var body dto.CreatePostRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}
	kind, err := model.ParseKind(body.Kind)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "kind must be 'req' or 'tes'", Field: "kind"})
	}

	p, err := h.Posts.Create(c.Context(), kind, uid, body.Body, body.Anonymous)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// Get godoc
// @Summary Fetch one post with its author
// @Tags posts
// @Produce json
// @Router /posts/{kind}/{postId} [get]
func (h *PostHandler) Get(c *fiber.Ctx) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}
	id, err := postIDParam(c)
	if err != nil {
		return err
	}

	p, err := h.Posts.Get(c.Context(), kind, id)
	if err != nil {
		return writeError(c, err)
	}

	viewerID, _ := middleware.UserIDFrom(c)
	item := services.FeedItem{Post: p}
	if p.Anonymous && p.AuthorID != viewerID {
		item.Post.AuthorID = ""
		item.Author = model.FallbackProfile()
	} else {
		item.Author = h.Profiles.Resolve(c.Context(), p.AuthorID)
	}
	return c.JSON(dto.NewFeedItem(item, viewerID))
}

// Update godoc
// @Summary Edit an owned post
// @Tags posts
// @Accept json
// @Produce json
// @Router /posts/{kind}/{postId} [put]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	uid, _ := middleware.UserIDFrom(c)

	kind, err := kindParam(c)
	if err != nil {
		return err
	}
	id, err := postIDParam(c)
	if err != nil {
		return err
	}

	var body dto.UpdatePostRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	var newKind model.Kind
	if body.Kind != "" {
		newKind, err = model.ParseKind(body.Kind)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "kind must be 'req' or 'tes'", Field: "kind"})
		}
	}

	p, err := h.Posts.Update(c.Context(), kind, id, uid, body.Body, body.Anonymous, newKind)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(p)
}

// Delete godoc
// @Summary Delete an owned post
// @Tags posts
// @Router /posts/{kind}/{postId} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	uid, _ := middleware.UserIDFrom(c)

	kind, err := kindParam(c)
	if err != nil {
		return err
	}
	id, err := postIDParam(c)
	if err != nil {
		return err
	}

	if err := h.Posts.Delete(c.Context(), kind, id, uid); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
