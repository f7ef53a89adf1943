package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tradepost/internal/services"
	"tradepost/internal/store"
)

type SellerHandler struct {
	Catalog *store.Catalog
	Auth    *services.AuthService
}

// Dashboard returns the seller's own products and incoming purchase
// requests. Unverified sellers are told to complete verification.
func (h *SellerHandler) Dashboard(c *fiber.Ctx) error {
	u, err := h.Auth.CurrentUser(ensureSID(c))
	if err != nil {
		return fail(c, err)
	}
	if err := services.CanViewSellerDashboard(u, h.Catalog); err != nil {
		return fail(c, err)
	}
	seller, err := h.Catalog.GetSeller(u.SellerID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"seller":   seller,
		"products": h.Catalog.ProductsBySeller(u.SellerID),
		"requests": h.Catalog.RequestsBySeller(u.SellerID),
	})
}
