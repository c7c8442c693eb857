package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"prayershare/internal/storage"
)

type FileHandler struct {
	Avatars *storage.AvatarStore
}

// Download godoc
// @Summary Stream a stored avatar image
// @Tags files
// @Router /files/{fileId} [get]
func (h *FileHandler) Download(c *fiber.Ctx) error {
	err := h.Avatars.Download(c.Context(), c.Params("fileId"), c.Response().BodyWriter())
	if errors.Is(err, storage.ErrFileNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return writeError(c, err)
	}
	return nil
}
