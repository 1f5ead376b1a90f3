package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vajbratya/automnator/internal/service"
	"github.com/Vajbratya/automnator/internal/transfer"
)

type ScheduleHandler struct {
	s service.ScheduleService
}

func NewScheduleHandler(s service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{s: s}
}

func (h *ScheduleHandler) ListSchedules(c *fiber.Ctx) error {
	schedules, err := h.s.List(c.Context(), GetUserID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"schedules": schedules})
}

func (h *ScheduleHandler) CreateSchedule(c *fiber.Ctx) error {
	var body transfer.ScheduleCreation
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	schedule, err := h.s.Create(c.Context(), GetUserID(c), &body)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"schedule": schedule})
}

// ListApprovals returns schedules still awaiting an approval decision.
func (h *ScheduleHandler) ListApprovals(c *fiber.Ctx) error {
	pending, err := h.s.ListPendingApproval(c.Context(), GetUserID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"approvals": pending})
}

func (h *ScheduleHandler) ApproveSchedule(c *fiber.Ctx) error {
	schedule, err := h.s.Approve(c.Context(), GetUserID(c), c.Params("scheduleId"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"schedule": schedule})
}

func (h *ScheduleHandler) RejectSchedule(c *fiber.Ctx) error {
	schedule, err := h.s.Reject(c.Context(), GetUserID(c), c.Params("scheduleId"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"schedule": schedule})
}

func (h *ScheduleHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.s.ListPosts(c.Context(), GetUserID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

func (h *ScheduleHandler) ListActionLogs(c *fiber.Ctx) error {
	logs, err := h.s.ListActionLogs(c.Context(), GetUserID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"logs": logs})
}
