package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"clinicart/internal/domain"
	"clinicart/internal/log"
	"clinicart/internal/services"
	"clinicart/internal/validate"
)

type InventoryHandler struct {
	Inv         *services.InventoryService
	Now         func() time.Time
	MaxPageSize int
}

func (h *InventoryHandler) Paginated(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	limit := validate.Limit(c.Query("limit"), h.MaxPageSize)
	pg, err := h.Inv.ListInventory(page, limit)
	if err != nil {
		return fail(c, err, msgProductNotFound)
	}
	return c.JSON(pg)
}

func (h *InventoryHandler) Single(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "id", "value": c.Params("id")})
		return c.Status(fiber.StatusNotFound).SendString(msgProductNotFound)
	}
	rec, err := h.Inv.GetInventory(id)
	if err != nil {
		return fail(c, err, msgProductNotFound)
	}
	return c.JSON(rec)
}

// Pincode reports the logistics provider for a pincode and whether same-day
// delivery can still be promised right now.
func (h *InventoryHandler) Pincode(c *fiber.Ctx) error {
	pin, ok := validate.Pincode(c.Params("pincode"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "pincode", "value": c.Params("pincode")})
		return c.Status(fiber.StatusNotFound).SendString(msgPincodeNotFound)
	}
	d, err := h.Inv.CheckPincode(pin, h.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Info(c, "pincode.miss", map[string]any{"pincode": pin})
		}
		return fail(c, err, msgPincodeNotFound)
	}
	return c.JSON(d)
}
