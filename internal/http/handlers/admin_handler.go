package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "tradepost/internal/log"
	"tradepost/internal/services"
	"tradepost/internal/store"
	"tradepost/internal/validate"
)

// AdminHandler serves the admin panel data: pending sellers and all
// purchase requests. Routes are mounted behind RequireAdmin.
type AdminHandler struct {
	Catalog  *store.Catalog
	Purchase *services.PurchaseService
}

// GET /api/v1/admin/sellers/pending
func (h *AdminHandler) PendingSellers(c *fiber.Ctx) error {
	sellers := h.Catalog.PendingSellers()
	return c.JSON(fiber.Map{"sellers": sellers, "count": len(sellers)})
}

// POST /api/v1/admin/sellers/:id/approve
func (h *AdminHandler) ApproveSeller(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid seller id"})
	}
	if err := h.Catalog.ApproveSeller(id); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "admin.seller.approve", map[string]any{"seller_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

// GET /api/v1/admin/requests
func (h *AdminHandler) Requests(c *fiber.Ctx) error {
	reqs := h.Catalog.ListPurchaseRequests()
	return c.JSON(fiber.Map{"requests": reqs, "count": len(reqs)})
}

// POST /api/v1/admin/requests/:id/status
func (h *AdminHandler) ResolveRequest(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request id"})
	}
	var body struct {
		Status string `json:"status"` // approved | rejected
	}
	if err := c.BodyParser(&body); err != nil || (body.Status != "approved" && body.Status != "rejected") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status must be approved or rejected"})
	}
	req, err := h.Purchase.Resolve(ensureSID(c), id, body.Status == "approved")
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "admin.request.resolve", map[string]any{"request_id": id, "status": body.Status})
	return c.JSON(req)
}
