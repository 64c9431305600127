package main

import (
	"fmt"
	"math/rand"
	"time"

	"clinicart/internal/catalog"
	"clinicart/internal/config"
	applog "clinicart/internal/log"
	"clinicart/internal/loader"
	"clinicart/internal/repos"
	"clinicart/internal/services"
)

// setup loads config and installs the configured logger.
func setup() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, err := applog.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	applog.SetLogger(logger)
	return cfg, nil
}

func policyFrom(cfg *config.Config) (*services.Policy, error) {
	offers, err := cfg.OfferWindows()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return &services.Policy{
		Offers:          offers,
		DefaultDiscount: cfg.DefaultDiscount(),
		Cutoffs:         cfg.Cutoffs(),
		Location:        loc,
	}, nil
}

// source opens the configured catalog source and returns a func releasing it.
func source(cfg *config.Config) (loader.Source, func(), error) {
	switch cfg.Data.Source {
	case "sqlite":
		db, err := repos.OpenDB(cfg.Data.DSN)
		if err != nil {
			return nil, nil, err
		}
		return repos.NewSourceRepo(db), func() { _ = db.Close() }, nil
	case "csv", "":
		return loader.NewCSVSource(cfg.Data.Dir), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown data source %q", cfg.Data.Source)
}

// loadOptions builds the random capabilities for a load. Enrichment and
// scarcity run concurrently, so each gets its own generator.
func loadOptions(cfg *config.Config) loader.Options {
	seed := cfg.Data.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return loader.Options{
		Enricher:      catalog.NewEnricher(catalog.Default(), rand.New(rand.NewSource(seed)), cfg.Catalog.MaxRating),
		Scarcity:      rand.New(rand.NewSource(seed + 1)),
		ScarcityBound: cfg.Inventory.ScarcityBound,
	}
}
