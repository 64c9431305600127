package main

import (
	"os/signal"
	"syscall"
	"time"

	html "github.com/gofiber/template/html/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"clinicart/internal/config"
	"clinicart/internal/http/handlers"
	applog "clinicart/internal/log"
	"clinicart/internal/loader"
	"clinicart/internal/services"
	"clinicart/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the catalog and serve the API and storefront",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer applog.Sync()

	pol, err := policyFrom(cfg)
	if err != nil {
		return err
	}
	policy := services.NewPolicyStore(pol)
	cfg.Watch(func(next *config.Config) {
		p, err := policyFrom(next)
		if err != nil {
			applog.Error(nil, "config.policy.fail", err, nil)
			return
		}
		policy.Set(p)
	})

	src, closeSrc, err := source(cfg)
	if err != nil {
		return err
	}
	defer closeSrc()

	// Templates & app
	engine := html.New(cfg.App.TemplateDir, ".html")
	engine.Reload(cfg.App.Env == "development")

	st := store.New()
	deps := handlers.NewDeps(st, policy, handlers.Options{
		MaxPageSize: cfg.HTTP.MaxPageSize,
		APIDocsDir:  cfg.App.APIDocsDir,
	})
	app := handlers.NewApp(deps, handlers.AppConfig{
		Views:            engine,
		BodyLimit:        cfg.HTTP.MaxBodySize,
		CORSAllowOrigins: cfg.HTTP.CORSAllowOrigins,
		PincodeRateLimit: cfg.HTTP.PincodeRateLimit,
		RateWindow:       cfg.HTTP.RateWindow,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	// Requests before the load finishes get 503.
	g.Go(func() error {
		_, err := loader.Load(gctx, src, st, loadOptions(cfg))
		if err != nil {
			applog.Error(nil, "catalog.load.fail", err, map[string]any{"source": cfg.Data.Source})
		}
		return nil
	})
	g.Go(func() error {
		applog.Info(nil, "server.start", map[string]any{"port": cfg.App.Port, "env": cfg.App.Env})
		return app.Listen(":" + cfg.App.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		applog.Info(nil, "server.stop", nil)
		return app.ShutdownWithTimeout(5 * time.Second)
	})
	return g.Wait()
}
