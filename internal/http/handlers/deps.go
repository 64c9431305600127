package handlers

import (
	"time"

	"clinicart/internal/services"
	"clinicart/internal/store"
)

type Deps struct {
	ProductHandler    *ProductHandler
	InventoryHandler  *InventoryHandler
	StorefrontHandler *StorefrontHandler
	HealthHandler     *HealthHandler
	DocsHandler       *DocsHandler
}

// Options tunes handler behavior. Zero values fall back to sane defaults.
type Options struct {
	Now         func() time.Time
	MaxPageSize int
	APIDocsDir  string
}

func NewDeps(st *store.Store, policy *services.PolicyStore, opts Options) *Deps {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	catalogSvc := services.NewCatalogService(st, policy)
	invSvc := services.NewInventoryService(st, policy)

	return &Deps{
		ProductHandler:    &ProductHandler{Catalog: catalogSvc, Now: opts.Now, MaxPageSize: opts.MaxPageSize},
		InventoryHandler:  &InventoryHandler{Inv: invSvc, Now: opts.Now, MaxPageSize: opts.MaxPageSize},
		StorefrontHandler: &StorefrontHandler{Catalog: catalogSvc, Inv: invSvc, Now: opts.Now},
		HealthHandler:     &HealthHandler{Store: st},
		DocsHandler:       &DocsHandler{SpecDir: opts.APIDocsDir},
	}
}
