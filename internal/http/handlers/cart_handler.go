package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "tradepost/internal/log"
	"tradepost/internal/services"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.Cart.View(ensureSID(c)))
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var body struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil || body.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid cart item"})
	}
	if err := h.Cart.Add(sid, body.ProductID, body.Quantity); err != nil {
		return fail(c, err)
	}
	applog.Info(c, "cart.add", map[string]any{"product_id": body.ProductID, "qty": body.Quantity})
	return c.JSON(h.Cart.View(sid))
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var body struct {
		ProductID int64 `json:"productId"`
	}
	if err := c.BodyParser(&body); err != nil || body.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid cart item"})
	}
	if err := h.Cart.Remove(sid, body.ProductID); err != nil {
		return fail(c, err)
	}
	return c.JSON(h.Cart.View(sid))
}
