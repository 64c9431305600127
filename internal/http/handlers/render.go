package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"clinicart/internal/domain"
	"clinicart/internal/log"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if rid, ok := c.Locals("requestid").(string); ok {
		data["RequestID"] = rid
	}
	return c.Render(tmpl, data)
}

// renderFail is fail for server-rendered pages.
func renderFail(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": notFound})
	case errors.Is(err, domain.ErrNotReady):
		c.Set(fiber.HeaderRetryAfter, "1")
		return c.Status(fiber.StatusServiceUnavailable).Render("notfound", fiber.Map{"Message": msgLoading})
	}
	log.Error(c, "storefront.error", err, nil)
	return err
}
