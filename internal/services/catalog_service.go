package services

import (
	"time"

	"github.com/shopspring/decimal"

	"clinicart/internal/domain"
	"clinicart/internal/rules"
	"clinicart/internal/store"
)

type CatalogService struct {
	Store  *store.Store
	Policy *PolicyStore
}

func NewCatalogService(st *store.Store, policy *PolicyStore) *CatalogService {
	return &CatalogService{Store: st, Policy: policy}
}

func (s *CatalogService) ListProducts(page, limit int, now time.Time) (domain.ProductPage, error) {
	pg, err := s.Store.ProductPage(page, limit)
	if err != nil {
		return domain.ProductPage{}, err
	}
	pol := s.Policy.Load()
	out := make([]domain.Product, 0, len(pg.Items))
	for _, e := range pg.Items {
		out = append(out, view(e, pol, now))
	}
	return domain.ProductPage{
		CurrentPage:   pg.Window.Page,
		TotalPages:    pg.Window.TotalPages,
		TotalProducts: pg.Total,
		ProductsData:  out,
	}, nil
}

func (s *CatalogService) AllProducts(now time.Time) ([]domain.Product, error) {
	entries, err := s.Store.Products()
	if err != nil {
		return nil, err
	}
	pol := s.Policy.Load()
	out := make([]domain.Product, 0, len(entries))
	for _, e := range entries {
		out = append(out, view(e, pol, now))
	}
	return out, nil
}

func (s *CatalogService) GetProduct(id int, now time.Time) (domain.Product, error) {
	e, err := s.Store.Product(id)
	if err != nil {
		return domain.Product{}, err
	}
	return view(e, s.Policy.Load(), now), nil
}

// view renders a stored product for one request: offer validity is judged at
// now, while the discounted price is whatever was first computed for it.
func view(e *store.ProductEntry, pol *Policy, now time.Time) domain.Product {
	p := e.Product
	p.Offers = make([]domain.Offer, 0, len(pol.Offers))
	if len(pol.Offers) == 0 {
		return p
	}
	for _, w := range pol.Offers {
		p.Offers = append(p.Offers, domain.Offer{
			Type:               w.Type,
			IsValid:            w.ValidAt(now),
			DiscountPercentage: w.DiscountPercentage,
		})
	}
	dp := e.DiscountedPrice(func() decimal.Decimal {
		return rules.DiscountedPrice(p.Price, rules.MaxDiscount(pol.DefaultDiscount, pol.Offers))
	})
	p.DiscountedPrice = &dp
	return p
}
