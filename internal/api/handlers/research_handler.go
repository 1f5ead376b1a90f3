package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vajbratya/automnator/internal/service"
	"github.com/Vajbratya/automnator/internal/transfer"
)

type ResearchHandler struct {
	s service.ResearchService
}

func NewResearchHandler(s service.ResearchService) *ResearchHandler {
	return &ResearchHandler{s: s}
}

func (h *ResearchHandler) ListSources(c *fiber.Ctx) error {
	sources, err := h.s.ListSources(c.Context(), GetUserID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"sources": sources})
}

func (h *ResearchHandler) CreateSource(c *fiber.Ctx) error {
	var body transfer.SourceCreation
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	source, err := h.s.CreateSource(c.Context(), GetUserID(c), &body)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"source": source})
}

func (h *ResearchHandler) DeleteSource(c *fiber.Ctx) error {
	if err := h.s.DeleteSource(c.Context(), GetUserID(c), c.Params("sourceId")); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (h *ResearchHandler) ListCaptures(c *fiber.Ctx) error {
	captures, err := h.s.ListCaptures(c.Context(), GetUserID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"captures": captures})
}

func (h *ResearchHandler) CreateCapture(c *fiber.Ctx) error {
	var body transfer.CaptureCreation
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	capture, err := h.s.CreateCapture(c.Context(), GetUserID(c), &body)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"capture": capture})
}

func (h *ResearchHandler) DeleteCapture(c *fiber.Ctx) error {
	if err := h.s.DeleteCapture(c.Context(), GetUserID(c), c.Params("captureId")); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
