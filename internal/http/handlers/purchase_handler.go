package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tradepost/internal/domain"
	applog "tradepost/internal/log"
	"tradepost/internal/services"
)

type PurchaseHandler struct {
	Purchase *services.PurchaseService
}

// Submit runs the purchase-request workflow for the session user.
func (h *PurchaseHandler) Submit(c *fiber.Ctx) error {
	sid := ensureSID(c)

	var body struct {
		ProductID     int64  `json:"productId"`
		Quantity      int    `json:"quantity"`
		Channel       string `json:"channel"`
		ProposedPrice string `json:"proposedPrice"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	in := services.SubmitInput{
		ProductID: body.ProductID,
		Quantity:  body.Quantity,
		Channel:   domain.Channel(body.Channel),
	}
	if body.ProposedPrice != "" {
		m := domain.ParsePrice(body.ProposedPrice)
		in.ProposedPrice = &m
	}

	req, err := h.Purchase.Submit(sid, in)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "purchase.submit", map[string]any{
		"request_id": req.ID, "product_id": req.ProductID, "quantity": req.Quantity,
	})
	return c.Status(fiber.StatusCreated).JSON(req)
}

// Mine lists the session user's own purchase requests.
func (h *PurchaseHandler) Mine(c *fiber.Ctx) error {
	reqs, err := h.Purchase.RequestsFor(ensureSID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"requests": reqs, "count": len(reqs)})
}
