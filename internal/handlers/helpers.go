package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"prayershare/dto"
	"prayershare/internal/repository"
	"prayershare/model"
	"prayershare/services"
)

// kindParam parses the :kind path segment.
func kindParam(c *fiber.Ctx) (model.Kind, error) {
	k, err := model.ParseKind(c.Params("kind"))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "kind must be 'req' or 'tes'")
	}
	return k, nil
}

func postIDParam(c *fiber.Ctx) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(c.Params("postId"))
	if err != nil {
		return bson.NilObjectID, fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}
	return id, nil
}

// writeError maps service and repository errors onto HTTP statuses. Raw
// store errors never reach clients.
func writeError(c *fiber.Ctx, err error) error {
	var ve services.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: ve.Error()})
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "not found"})
	case errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: err.Error(), Field: "email"})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrLedgerUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Message: "try again later"})
	case errors.Is(err, services.ErrFetchInFlight):
		return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Message: "fetch already in progress"})
	default:
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Message: fe.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "internal error"})
	}
}
