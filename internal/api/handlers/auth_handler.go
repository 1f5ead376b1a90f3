package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	config "github.com/Vajbratya/automnator/configs"
	"github.com/Vajbratya/automnator/internal/service"
	"github.com/Vajbratya/automnator/internal/transfer"
	"github.com/Vajbratya/automnator/pkg/utils"
)

const sessionDuration = 30 * 24 * time.Hour

type AuthHandler struct {
	cfg config.Config
	s   service.UserService
}

func NewAuthHandler(cfg config.Config, s service.UserService) *AuthHandler {
	return &AuthHandler{cfg: cfg, s: s}
}

// SignIn resolves (or creates) the user for an email and issues a session
// cookie. There is no password; sign-in is by email only.
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var body transfer.SignInRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, err := h.s.SignIn(c.Context(), body.Email)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	token, err := utils.GenerateToken(h.cfg.SecretKey, user.ID, user.Email, sessionDuration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to create session",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionDuration.Seconds()),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":   true,
		"user": fiber.Map{"id": user.ID, "email": user.Email},
	})
}

func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:   h.cfg.CookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.s.GetUserInfo(c.Context(), GetUserID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}
