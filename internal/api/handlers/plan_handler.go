package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vajbratya/automnator/internal/service"
	"github.com/Vajbratya/automnator/internal/transfer"
)

type PlanHandler struct {
	s service.PlannerService
}

func NewPlanHandler(s service.PlannerService) *PlanHandler {
	return &PlanHandler{s: s}
}

func (h *PlanHandler) GeneratePlan(c *fiber.Ctx) error {
	var body transfer.PlanRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	created, err := h.s.GeneratePlan(c.Context(), GetUserID(c), &body)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"created": created,
		})
	}

	return c.JSON(fiber.Map{"ok": true, "created": created})
}
