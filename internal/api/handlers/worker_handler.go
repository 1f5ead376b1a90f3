package handlers

import (
	"github.com/gofiber/fiber/v2"

	config "github.com/Vajbratya/automnator/configs"
	"github.com/Vajbratya/automnator/internal/worker"
)

type WorkerHandler struct {
	cfg config.Config
	w   *worker.Worker
}

func NewWorkerHandler(cfg config.Config, w *worker.Worker) *WorkerHandler {
	return &WorkerHandler{cfg: cfg, w: w}
}

// RunWorker performs exactly one claim-and-process cycle. It is the
// trigger surface for external cron callers; the endpoint is gated by a
// shared secret when one is configured.
func (h *WorkerHandler) RunWorker(c *fiber.Ctx) error {
	if secret := h.cfg.WorkerSecret; secret != "" {
		provided := c.Get("X-Worker-Secret")
		if provided == "" {
			provided = c.Query("secret")
		}
		if provided != secret {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
	} else if !h.cfg.MockPublisher {
		// Without a secret, an open endpoint must not drive real
		// publishing.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "WORKER_SECRET is required for non-mock publishing",
		})
	}

	result, err := h.w.RunOnce(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"ok":        true,
		"claimed":   result.Claimed,
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
		"errors":    result.Errors,
	})
}
