package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tradepost/internal/domain"
	applog "tradepost/internal/log"
)

// ensureSID returns the session cookie, creating one for first-time
// visitors.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // enable true behind TLS
		})
	}
	return sid
}

// fail maps the domain error taxonomy onto HTTP statuses without leaking
// internals. Unknown errors become a friendly 500.
func fail(c *fiber.Ctx, err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		status := fiber.StatusInternalServerError
		switch de.Kind {
		case domain.KindValidation, domain.KindRange:
			status = fiber.StatusBadRequest
		case domain.KindNotFound:
			status = fiber.StatusNotFound
		case domain.KindPermission:
			if strings.Contains(de.Message, "login required") {
				status = fiber.StatusUnauthorized
			} else {
				status = fiber.StatusForbidden
			}
		}
		if status == fiber.StatusForbidden || status == fiber.StatusUnauthorized {
			applog.Security(c, "access.denied", map[string]any{"error": de.Message})
		}
		return c.Status(status).JSON(fiber.Map{"error": de.Message})
	}
	applog.Error(c, "server.error", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Something went wrong. Please try again.",
	})
}
