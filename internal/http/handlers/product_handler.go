package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"clinicart/internal/log"
	"clinicart/internal/services"
	"clinicart/internal/validate"
)

type ProductHandler struct {
	Catalog     *services.CatalogService
	Now         func() time.Time
	MaxPageSize int
}

// All returns every product in load order.
func (h *ProductHandler) All(c *fiber.Ctx) error {
	products, err := h.Catalog.AllProducts(h.Now())
	if err != nil {
		return fail(c, err, msgProductNotFound)
	}
	return c.JSON(products)
}

func (h *ProductHandler) Paginated(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	limit := validate.Limit(c.Query("limit"), h.MaxPageSize)
	pg, err := h.Catalog.ListProducts(page, limit, h.Now())
	if err != nil {
		return fail(c, err, msgProductNotFound)
	}
	return c.JSON(pg)
}

func (h *ProductHandler) Single(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "id", "value": c.Params("id")})
		return c.Status(fiber.StatusNotFound).SendString(msgProductNotFound)
	}
	p, err := h.Catalog.GetProduct(id, h.Now())
	if err != nil {
		return fail(c, err, msgProductNotFound)
	}
	return c.JSON(p)
}
