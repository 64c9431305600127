package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"clinicart/internal/domain"
	"clinicart/internal/log"
)

const (
	msgProductNotFound = "Product not found"
	msgPincodeNotFound = "Pincode not found"
	msgLoading         = "Catalog is loading, please retry shortly"
	msgServerError     = "Something went wrong. Please try again."
)

// fail maps service errors onto API responses. Anything that is not a known
// domain error goes to the app ErrorHandler.
func fail(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).SendString(notFound)
	case errors.Is(err, domain.ErrNotReady):
		c.Set(fiber.HeaderRetryAfter, "1")
		return c.Status(fiber.StatusServiceUnavailable).SendString(msgLoading)
	}
	return err
}

// ErrorHandler logs unexpected failures and answers with a friendly message.
// Framework errors below 500 (unknown route, oversized body) keep their status.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := msgServerError
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		code, msg = fe.Code, fe.Message
	} else {
		log.Error(c, "server.error", err, nil)
	}
	c.Status(code)
	if isAPI(c) {
		return c.SendString(msg)
	}
	if code == fiber.StatusNotFound {
		msg = "Page not found"
	}
	if rerr := c.Render("notfound", fiber.Map{"Message": msg}); rerr != nil {
		return c.SendString(msg)
	}
	return nil
}

func isAPI(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}
