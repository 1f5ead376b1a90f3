package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Vajbratya/automnator/internal/store"
)

func GetUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, store.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, store.ErrInvalidState):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

func jsonError(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
