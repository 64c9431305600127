package handlers

import (
	scalargo "github.com/bdpiprava/scalar-go"
	"github.com/gofiber/fiber/v2"
)

// DocsHandler serves the API reference rendered from api.yaml in SpecDir.
type DocsHandler struct {
	SpecDir string
}

func (h *DocsHandler) Reference(c *fiber.Ctx) error {
	html, err := scalargo.NewV2(
		scalargo.WithSpecDir(h.SpecDir),
		scalargo.WithMetaDataOpts(
			scalargo.WithTitle("Clinicart Catalog API"),
		),
	)
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.SendString(html)
}
