package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tradepost/internal/services"
)

type PrefsHandler struct {
	Prefs *services.PrefsService
}

func (h *PrefsHandler) Theme(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"theme": h.Prefs.Theme(ensureSID(c))})
}

func (h *PrefsHandler) SetTheme(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var body struct {
		Theme string `json:"theme"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.Prefs.SetTheme(sid, body.Theme); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"theme": body.Theme})
}
