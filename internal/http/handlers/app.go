package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"clinicart/internal/log"
)

type AppConfig struct {
	Views            fiber.Views
	BodyLimit        int
	CORSAllowOrigins string
	// PincodeRateLimit caps pincode lookups per client per RateWindow. Zero disables it.
	PincodeRateLimit int
	RateWindow       time.Duration
}

// NewApp builds the fiber app with middleware and every route mounted.
func NewApp(d *Deps, cfg AppConfig) *fiber.App {
	if cfg.BodyLimit <= 0 {
		cfg.BodyLimit = 1 << 20
	}
	if cfg.RateWindow <= 0 {
		cfg.RateWindow = 30 * time.Second
	}
	if cfg.CORSAllowOrigins == "" {
		cfg.CORSAllowOrigins = "*"
	}

	app := fiber.New(fiber.Config{
		Views:                 cfg.Views,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})

	// ---------- Middlewares ----------
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(log.Access())
	app.Use(recover.New())
	app.Use(helmet.New(helmet.Config{CrossOriginEmbedderPolicy: "unsafe-none"}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: "GET,HEAD,OPTIONS",
	}))

	// ---------- Storefront ----------
	app.Get("/", d.StorefrontHandler.Home)
	app.Get("/product/:id", d.StorefrontHandler.Detail)

	// ---------- API ----------
	api := app.Group("/api")
	api.Get("/products", d.ProductHandler.All)
	api.Get("/products/paginated", d.ProductHandler.Paginated)
	api.Get("/products/single/:id", d.ProductHandler.Single)
	api.Get("/inventory/paginated", d.InventoryHandler.Paginated)
	api.Get("/inventory/single/:id", d.InventoryHandler.Single)

	pincode := []fiber.Handler{}
	if cfg.PincodeRateLimit > 0 {
		pincode = append(pincode, limiter.New(limiter.Config{
			Max:        cfg.PincodeRateLimit,
			Expiration: cfg.RateWindow,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP() + "|pincode"
			},
			LimitReached: func(c *fiber.Ctx) error {
				log.Security(c, "rate.pincode.hit", nil)
				c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(cfg.RateWindow.Seconds())))
				return c.Status(fiber.StatusTooManyRequests).SendString("Too many pincode lookups, retry soon")
			},
		}))
	}
	pincode = append(pincode, d.InventoryHandler.Pincode)
	api.Get("/inventory/pincode/:pincode", pincode...)

	// ---------- Health, docs & 404 ----------
	app.Get("/healthz", d.HealthHandler.Healthz)
	app.Get("/readyz", d.HealthHandler.Readyz)
	app.Get("/docs", d.DocsHandler.Reference)
	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	return app
}
