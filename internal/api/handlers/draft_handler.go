package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vajbratya/automnator/internal/service"
	"github.com/Vajbratya/automnator/internal/transfer"
)

type DraftHandler struct {
	s service.DraftService
}

func NewDraftHandler(s service.DraftService) *DraftHandler {
	return &DraftHandler{s: s}
}

func (h *DraftHandler) ListDrafts(c *fiber.Ctx) error {
	drafts, err := h.s.List(c.Context(), GetUserID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"drafts": drafts})
}

func (h *DraftHandler) GetDraft(c *fiber.Ctx) error {
	draft, err := h.s.Get(c.Context(), GetUserID(c), c.Params("draftId"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"draft": draft})
}

func (h *DraftHandler) CreateDraft(c *fiber.Ctx) error {
	var body transfer.DraftCreation
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	draft, err := h.s.Create(c.Context(), GetUserID(c), &body)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"draft": draft})
}

func (h *DraftHandler) UpdateDraft(c *fiber.Ctx) error {
	var body transfer.DraftUpdate
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	draft, err := h.s.Update(c.Context(), GetUserID(c), c.Params("draftId"), &body)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"draft": draft})
}

func (h *DraftHandler) DeleteDraft(c *fiber.Ctx) error {
	if err := h.s.Delete(c.Context(), GetUserID(c), c.Params("draftId")); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
