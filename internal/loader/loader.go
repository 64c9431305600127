// Package loader fills the in-memory store from a catalog source. The three
// collections load concurrently; when all of them are done the store is
// marked ready. Bad rows are skipped with a warning and never abort a load.
package loader

import (
	"context"
	"errors"
	"io/fs"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"clinicart/internal/catalog"
	"clinicart/internal/domain"
	applog "clinicart/internal/log"
	"clinicart/internal/repos"
	"clinicart/internal/rules"
	"clinicart/internal/store"
	"clinicart/internal/validate"
)

// Source yields raw catalog rows. CSVSource and repos.SourceRepo implement it.
type Source interface {
	Products(ctx context.Context) ([]repos.ProductRow, error)
	Stock(ctx context.Context) ([]repos.StockRow, error)
	Pincodes(ctx context.Context) ([]repos.PincodeRow, error)
}

// Options carries the random capabilities used while building records. The
// product and stock loaders run in parallel, so they must not share a source.
type Options struct {
	Enricher      *catalog.Enricher
	Scarcity      rules.Source
	ScarcityBound int
}

type Counts struct {
	Loaded     int `json:"loaded"`
	Skipped    int `json:"skipped"`
	Duplicates int `json:"duplicates"`
}

type Report struct {
	Products  Counts `json:"products"`
	Inventory Counts `json:"inventory"`
	Pincodes  Counts `json:"pincodes"`
}

// Load reads every collection from src into st and marks st ready. A missing
// collection is logged and left empty. The store is marked ready even when a
// source fails, so lookups answer NotFound instead of hanging; the first hard
// failure is returned.
func Load(ctx context.Context, src Source, st *store.Store, opts Options) (Report, error) {
	var rep Report
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := src.Products(gctx)
		if err = tolerate("products", err); err != nil || rows == nil {
			return err
		}
		rep.Products = loadProducts(rows, st, opts.Enricher)
		return nil
	})
	g.Go(func() error {
		rows, err := src.Stock(gctx)
		if err = tolerate("inventory", err); err != nil || rows == nil {
			return err
		}
		rep.Inventory = loadStock(rows, st, opts.Scarcity, opts.ScarcityBound)
		return nil
	})
	g.Go(func() error {
		rows, err := src.Pincodes(gctx)
		if err = tolerate("pincodes", err); err != nil || rows == nil {
			return err
		}
		rep.Pincodes = loadPincodes(rows, st)
		return nil
	})

	err := g.Wait()
	st.MarkReady()
	if err != nil {
		applog.Error(nil, "load.fail", err, nil)
	}
	applog.Info(nil, "load.done", map[string]any{
		"products":  rep.Products,
		"inventory": rep.Inventory,
		"pincodes":  rep.Pincodes,
	})
	return rep, err
}

func tolerate(collection string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		applog.Warn(nil, "load."+collection+".missing", map[string]any{"err": err.Error()})
		return nil
	}
	return err
}

func skip(collection string, row int, reason string) {
	applog.Warn(nil, "load."+collection+".skip", map[string]any{"row": row, "reason": reason})
}

func loadProducts(rows []repos.ProductRow, st *store.Store, e *catalog.Enricher) Counts {
	var c Counts
	for i, r := range rows {
		id, ok := validate.ID(r.ID)
		if !ok {
			skip("products", i+1, "bad product id")
			c.Skipped++
			continue
		}
		name := strings.TrimSpace(r.Name)
		if name == "" {
			skip("products", i+1, "missing product name")
			c.Skipped++
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(r.Price))
		if err != nil || price.IsNegative() {
			skip("products", i+1, "bad price")
			c.Skipped++
			continue
		}
		if err := st.AddProduct(e.Enrich(id, name, price)); err != nil {
			applog.Warn(nil, "load.products.duplicate", map[string]any{"row": i + 1, "id": id})
			c.Duplicates++
			continue
		}
		c.Loaded++
	}
	return c
}

func loadStock(rows []repos.StockRow, st *store.Store, src rules.Source, bound int) Counts {
	var c Counts
	for i, r := range rows {
		id, ok := validate.ID(r.ID)
		if !ok {
			skip("inventory", i+1, "bad product id")
			c.Skipped++
			continue
		}
		avail, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(r.StockAvailable)))
		if err != nil {
			skip("inventory", i+1, "bad stock flag")
			c.Skipped++
			continue
		}
		rec := domain.InventoryRecord{
			ID:                  id,
			StockAvailable:      avail,
			AreOnlyFewItemsLeft: rules.FewItemsLeft(src, avail, bound),
		}
		if err := st.AddInventory(rec); err != nil {
			applog.Warn(nil, "load.inventory.duplicate", map[string]any{"row": i + 1, "id": id})
			c.Duplicates++
			continue
		}
		c.Loaded++
	}
	return c
}

func loadPincodes(rows []repos.PincodeRow, st *store.Store) Counts {
	var c Counts
	for i, r := range rows {
		pin, ok := validate.Pincode(r.Pincode)
		if !ok {
			skip("pincodes", i+1, "bad pincode")
			c.Skipped++
			continue
		}
		provider := strings.TrimSpace(r.Provider)
		if provider == "" {
			skip("pincodes", i+1, "missing logistics provider")
			c.Skipped++
			continue
		}
		rec := domain.PincodeRecord{
			Pincode:           pin,
			LogisticsProvider: provider,
			TurnAroundTime:    strings.TrimSpace(r.TAT),
		}
		if err := st.AddPincode(rec); err != nil {
			applog.Warn(nil, "load.pincodes.duplicate", map[string]any{"row": i + 1, "pincode": pin})
			c.Duplicates++
			continue
		}
		c.Loaded++
	}
	return c
}
