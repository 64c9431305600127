package handlers

import (
	"github.com/gofiber/fiber/v2"

	"clinicart/internal/store"
)

type HealthHandler struct {
	Store *store.Store
}

func (h *HealthHandler) Healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

// Readyz answers 200 once the catalog load finished, 503 before.
func (h *HealthHandler) Readyz(c *fiber.Ctx) error {
	if !h.Store.Ready() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"ready": false})
	}
	return c.JSON(fiber.Map{"ready": true, "stats": h.Store.Stats()})
}
