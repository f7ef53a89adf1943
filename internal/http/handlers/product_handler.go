package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tradepost/internal/domain"
	applog "tradepost/internal/log"
	"tradepost/internal/query"
	"tradepost/internal/services"
	"tradepost/internal/store"
	"tradepost/internal/validate"
)

type ProductHandler struct {
	Catalog *store.Catalog
	Auth    *services.AuthService

	// VerifiedOnly gates listing visibility to verified sellers' products.
	VerifiedOnly bool
}

// List runs the catalog query engine over the filter spec carried in the
// query string. Bad filter values are rejected at the boundary; the engine
// itself never fails.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	spec := query.DefaultSpec()

	q, ok := validate.Q(c.Query("q"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "q"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enter a valid keyword (letters/numbers only)"})
	}
	spec.Search = q

	cat, ok := validate.Category(c.Query("category"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category"})
	}
	spec.Category = cat

	if s := c.Query("sort"); s != "" {
		if !query.ValidSort(query.Sort(s)) {
			applog.Security(c, "validation.fail", map[string]any{"field": "sort"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid sort option"})
		}
		spec.Sort = query.Sort(s)
	}

	if s := c.Query("price_min"); s != "" {
		spec.PriceMin = domain.ParsePrice(s)
	}
	if s := c.Query("price_max"); s != "" {
		spec.PriceMax = domain.ParsePrice(s)
	}
	spec.MinRating = validate.Rating(c.Query("min_rating"))
	spec.Page = validate.Page(c.Query("page"))
	spec.PageSize = validate.PageSize(c.Query("page_size"), query.DefaultPageSize)

	spec.VerifiedOnly = h.VerifiedOnly
	if s := c.Query("verified_only"); s != "" {
		spec.VerifiedOnly = s == "true"
	}

	res := query.Run(h.Catalog.ListProducts(), h.Catalog.VerifiedSellers(), spec)
	return c.JSON(res)
}

// Detail returns one product with its seller's public info.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return fail(c, err)
	}
	type sellerInfo struct {
		ID                     int64                     `json:"id"`
		BusinessName           string                    `json:"businessName"`
		PreferredCommunication domain.Channel            `json:"preferredCommunication"`
		VerificationStatus     domain.VerificationStatus `json:"verificationStatus"`
	}
	out := fiber.Map{"product": p, "priceDisplay": p.Price.Format()}
	if s, err := h.Catalog.GetSeller(p.SellerID); err == nil {
		out["seller"] = sellerInfo{
			ID:                     s.ID,
			BusinessName:           s.BusinessName,
			PreferredCommunication: s.PreferredCommunication,
			VerificationStatus:     s.VerificationStatus,
		}
	}
	return c.JSON(out)
}

// Create adds a product on behalf of the session's seller.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	u, err := h.Auth.CurrentUser(ensureSID(c))
	if err != nil {
		return fail(c, err)
	}
	if err := services.CanAddProduct(u, h.Catalog); err != nil {
		return fail(c, err)
	}

	var body struct {
		Name                string            `json:"name"`
		Description         string            `json:"description"`
		Category            string            `json:"category"`
		Price               string            `json:"price"`
		Image               string            `json:"image"`
		StockQuantity       *int              `json:"stockQuantity"`
		MinPurchaseQuantity int               `json:"minPurchaseQuantity"`
		MaxPurchaseQuantity int               `json:"maxPurchaseQuantity"`
		Tags                []string          `json:"tags"`
		SKU                 string            `json:"sku"`
		Brand               string            `json:"brand"`
		Condition           string            `json:"condition"`
		BulkPricing         []domain.BulkTier `json:"bulkPricing"`
		Variants            []domain.Variant  `json:"variants"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	p, err := h.Catalog.AddProduct(store.ProductInput{
		Name:                body.Name,
		Description:         body.Description,
		Category:            body.Category,
		Price:               domain.ParsePrice(body.Price),
		Image:               body.Image,
		StockQuantity:       body.StockQuantity,
		MinPurchaseQuantity: body.MinPurchaseQuantity,
		MaxPurchaseQuantity: body.MaxPurchaseQuantity,
		Tags:                body.Tags,
		SKU:                 body.SKU,
		Brand:               body.Brand,
		Condition:           body.Condition,
		BulkPricing:         body.BulkPricing,
		Variants:            body.Variants,
	}, u.SellerID)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.create", map[string]any{"product_id": p.ID, "seller_id": u.SellerID})
	return c.Status(fiber.StatusCreated).JSON(p)
}
