package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"tradepost/internal/domain"
	applog "tradepost/internal/log"
	"tradepost/internal/services"
	"tradepost/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)

	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if _, ok := validate.Email(body.Email); ok && validate.Password(body.Password) {
		if u, err := h.Auth.Login(sid, body.Email, body.Password); err == nil {
			applog.Audit(c, "auth.login.success", map[string]any{"email": body.Email})
			return c.JSON(fiber.Map{"user": u})
		}
	}
	applog.Security(c, "auth.login.fail", map[string]any{"email": body.Email})
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", nil)
	return c.JSON(fiber.Map{"ok": true})
}

// SwitchRole changes the active role of a multi-role session.
func (h *AuthHandler) SwitchRole(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var body struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&body); err != nil || !domain.ValidRole(domain.Role(body.Role)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid role"})
	}
	if err := h.Auth.SwitchRole(sid, domain.Role(body.Role)); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "auth.switch_role", map[string]any{"role": body.Role})
	u, _ := h.Auth.CurrentUser(sid)
	return c.JSON(fiber.Map{"user": u})
}

// Me reports the session user, or null for anonymous sessions.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u, err := h.Auth.CurrentUser(ensureSID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"user": u})
}
