package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "tradepost/internal/log"
	"tradepost/internal/services"
)

type WishlistHandler struct {
	Wish *services.WishlistService
}

func (h *WishlistHandler) List(c *fiber.Ctx) error {
	items := h.Wish.List(ensureSID(c))
	return c.JSON(fiber.Map{"items": items, "count": len(items)})
}

// Toggle saves the product when absent and removes it when present.
func (h *WishlistHandler) Toggle(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var body struct {
		ProductID int64 `json:"productId"`
	}
	if err := c.BodyParser(&body); err != nil || body.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	saved, err := h.Wish.Toggle(sid, body.ProductID)
	if err != nil {
		return fail(c, err)
	}
	applog.Info(c, "wishlist.toggle", map[string]any{"product_id": body.ProductID, "saved": saved})
	return c.JSON(fiber.Map{"saved": saved})
}
