package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"prayershare/configs"
	"prayershare/dto"
	"prayershare/internal/middleware"
	"prayershare/internal/profilecache"
	"prayershare/internal/repository"
	"prayershare/internal/storage"
)

type UserHandler struct {
	Users    *repository.UserRepository
	Profiles *profilecache.Cache
	Avatars  *storage.AvatarStore
}

// Me godoc
// @Summary The viewer's own profile
// @Tags users
// @Produce json
// @Router /users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	uid, _ := middleware.UserIDFrom(c)

	u, err := h.Users.Get(c.Context(), uid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewUserResponse(u, true))
}

// UpdateMe godoc
// @Summary Update display name, handle and avatar
// @Tags users
// @Accept json
// @Produce json
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	uid, _ := middleware.UserIDFrom(c)

	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	body.DisplayName = strings.TrimSpace(body.DisplayName)
	body.Handle = strings.TrimSpace(strings.TrimPrefix(body.Handle, "@"))
	if body.DisplayName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "display name is required", Field: "displayName"})
	}
	if body.Handle == "" || len(body.Handle) > configs.MaxHandleLen || strings.ContainsAny(body.Handle, " \t") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "handle is invalid", Field: "handle"})
	}

	taken, err := h.Users.HandleTaken(c.Context(), body.Handle, uid)
	if err != nil {
		return writeError(c, err)
	}
	if taken {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "handle already taken", Field: "handle"})
	}

	if err := h.Users.UpdateProfile(c.Context(), uid, body.DisplayName, body.Handle, body.AvatarURL); err != nil {
		return writeError(c, err)
	}
	h.Profiles.Invalidate(uid)

	u, err := h.Users.Get(c.Context(), uid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewUserResponse(u, true))
}

// Get godoc
// @Summary Public profile of a user
// @Tags users
// @Produce json
// @Router /users/{userId} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	u, err := h.Users.Get(c.Context(), c.Params("userId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewUserResponse(u, false))
}

// DeleteMe godoc
// @Summary Delete the viewer's account
// @Description Posts are not cascaded; feeds show the unknown-user fallback for them.
// @Tags users
// @Router /users/me [delete]
func (h *UserHandler) DeleteMe(c *fiber.Ctx) error {
	uid, _ := middleware.UserIDFrom(c)

	if err := h.Users.Delete(c.Context(), uid); err != nil {
		return writeError(c, err)
	}
	h.Profiles.Invalidate(uid)
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadAvatar godoc
// @Summary Upload a profile image
// @Tags users
// @Accept mpfd
// @Produce json
// @Router /users/me/avatar [post]
func (h *UserHandler) UploadAvatar(c *fiber.Ctx) error {
	uid, _ := middleware.UserIDFrom(c)

	fh, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "avatar file is required", Field: "avatar"})
	}

	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()

	url, err := h.Avatars.Upload(c.Context(), uid+"/"+fh.Filename, f)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.Users.SetAvatar(c.Context(), uid, url); err != nil {
		return writeError(c, err)
	}
	h.Profiles.Invalidate(uid)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"avatarUrl": url})
}
