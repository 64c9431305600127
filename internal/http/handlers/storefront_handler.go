package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"clinicart/internal/domain"
	"clinicart/internal/log"
	"clinicart/internal/rules"
	"clinicart/internal/services"
	"clinicart/internal/validate"
)

const msgGone = "This item is no longer available"

// StorefrontHandler serves the server-rendered shop pages.
type StorefrontHandler struct {
	Catalog *services.CatalogService
	Inv     *services.InventoryService
	Now     func() time.Time
}

func (h *StorefrontHandler) Home(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	pg, err := h.Catalog.ListProducts(page, rules.DefaultLimit, h.Now())
	if err != nil {
		return renderFail(c, err, "Page not found")
	}
	data := fiber.Map{"Page": pg}
	if pg.CurrentPage > 1 {
		data["Prev"] = pg.CurrentPage - 1
	}
	if pg.CurrentPage < pg.TotalPages {
		data["Next"] = pg.CurrentPage + 1
	}
	return render(c, "products", data)
}

func (h *StorefrontHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": msgGone})
	}
	now := h.Now()
	p, err := h.Catalog.GetProduct(id, now)
	if err != nil {
		return renderFail(c, err, msgGone)
	}

	data := fiber.Map{
		"P":       p,
		"OnOffer": p.OnOffer(),
		"Buy":     rules.LabelBuyNow,
	}
	// Stock is optional: a product without an inventory row is still sellable.
	if inv, err := h.Inv.GetInventory(id); err == nil {
		data["Buy"] = rules.BuyLabel(inv.StockAvailable)
		data["OutOfStock"] = !inv.StockAvailable
		data["FewLeft"] = inv.AreOnlyFewItemsLeft
	} else if !errors.Is(err, domain.ErrNotFound) {
		log.Warn(c, "storefront.inventory.fail", map[string]any{"id": id, "err": err.Error()})
	}

	if raw := strings.TrimSpace(c.Query("pincode")); raw != "" {
		data["Pincode"] = raw
		data["Availability"], data["Countdown"] = h.availability(raw, now)
	}
	return render(c, "product", data)
}

func (h *StorefrontHandler) availability(raw string, now time.Time) (string, string) {
	pin, ok := validate.Pincode(raw)
	if !ok {
		return rules.MsgPincodeNotFound, ""
	}
	d, err := h.Inv.CheckPincode(pin, now)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return rules.MsgPincodeNotFound, ""
	case err != nil:
		return rules.MsgUnknownAvailability, ""
	}
	return rules.Availability(d), rules.Countdown(d.ExpiryTimeForSameDayDelivery)
}
