// Package http assembles the Fiber application: middleware chain, routes,
// and the JSON error surface.
package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"tradepost/internal/config"
	"tradepost/internal/http/handlers"
	applog "tradepost/internal/log"
	"tradepost/internal/services"
	"tradepost/internal/store"
)

// NewApp wires the full application. Tests build it the same way main does.
func NewApp(catalog *store.Catalog, kv *store.KV, cfg config.Config, auth *services.AuthService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// friendly surface; internals stay in the log
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/healthz")
		},
	}))

	deps := handlers.NewDeps(catalog, kv, cfg, auth)

	api := app.Group("/api/v1")

	// Catalog browsing (search throttled tighter than the global limit)
	searchLimiter := limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.search.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})
	api.Get("/products", searchLimiter, deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)
	api.Post("/products", deps.ProductHandler.Create)

	// Purchase requests
	api.Post("/purchase-requests", deps.PurchaseHandler.Submit)
	api.Get("/purchase-requests", deps.PurchaseHandler.Mine)

	// Seller dashboard
	api.Get("/seller/dashboard", deps.SellerHandler.Dashboard)

	// Admin panel
	admin := api.Group("/admin", handlers.RequireAdmin(auth))
	admin.Get("/sellers/pending", deps.AdminHandler.PendingSellers)
	admin.Post("/sellers/:id/approve", deps.AdminHandler.ApproveSeller)
	admin.Get("/requests", deps.AdminHandler.Requests)
	admin.Post("/requests/:id/status", deps.AdminHandler.ResolveRequest)

	// Cart & wishlist & prefs
	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart", deps.CartHandler.Add)
	api.Post("/cart/delete", deps.CartHandler.Remove)
	api.Get("/wishlist", deps.WishlistHandler.List)
	api.Post("/wishlist", deps.WishlistHandler.Toggle)
	api.Get("/prefs/theme", deps.PrefsHandler.Theme)
	api.Put("/prefs/theme", deps.PrefsHandler.SetTheme)

	// Auth (login throttled)
	loginLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	})
	app.Post("/login", loginLimiter, deps.AuthHandler.Login)
	app.Post("/logout", deps.AuthHandler.Logout)
	app.Post("/switch-role", deps.AuthHandler.SwitchRole)
	app.Get("/me", deps.AuthHandler.Me)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	return app
}
