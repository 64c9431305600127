// Package store keeps the loaded catalog in memory. It is written during a
// single load phase and read-only afterwards: reads fail with
// domain.ErrNotReady until MarkReady is called, and writes fail after it.
package store

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"clinicart/internal/domain"
	"clinicart/internal/rules"
)

// ErrClosed is returned by writes once the store has been marked ready.
var ErrClosed = errors.New("store: load phase is closed")

// ProductEntry is the stored form of a product. Product is immutable; the
// discounted price is computed on first request and kept from then on.
type ProductEntry struct {
	Product  domain.Product
	discount rules.PriceMemo
}

func (e *ProductEntry) DiscountedPrice(compute func() decimal.Decimal) decimal.Decimal {
	return e.discount.Get(compute)
}

// Page is one window of an ordered collection.
type Page[T any] struct {
	Items  []T
	Window rules.Window
	Total  int
}

type Stats struct {
	Products  int `json:"products"`
	Inventory int `json:"inventory"`
	Pincodes  int `json:"pincodes"`
}

type Store struct {
	mu    sync.Mutex // serialises the concurrent loaders
	ready atomic.Bool

	products    []*ProductEntry
	productByID map[int]*ProductEntry

	inventory   []domain.InventoryRecord
	inventoryAt map[int]int

	pincodes map[int]domain.PincodeRecord
}

func New() *Store {
	return &Store{
		productByID: make(map[int]*ProductEntry),
		inventoryAt: make(map[int]int),
		pincodes:    make(map[int]domain.PincodeRecord),
	}
}

// AddProduct appends p in load order. A second product with the same id is
// rejected with domain.ErrDuplicate.
func (s *Store) AddProduct(p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready.Load() {
		return ErrClosed
	}
	if _, ok := s.productByID[p.ID]; ok {
		return fmt.Errorf("product %d: %w", p.ID, domain.ErrDuplicate)
	}
	e := &ProductEntry{Product: p}
	s.products = append(s.products, e)
	s.productByID[p.ID] = e
	return nil
}

func (s *Store) AddInventory(r domain.InventoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready.Load() {
		return ErrClosed
	}
	if _, ok := s.inventoryAt[r.ID]; ok {
		return fmt.Errorf("inventory %d: %w", r.ID, domain.ErrDuplicate)
	}
	s.inventoryAt[r.ID] = len(s.inventory)
	s.inventory = append(s.inventory, r)
	return nil
}

// AddPincode registers a serviceable pincode. Only one provider serves a
// pincode: the first registration wins and later ones get domain.ErrDuplicate.
func (s *Store) AddPincode(r domain.PincodeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready.Load() {
		return ErrClosed
	}
	if _, ok := s.pincodes[r.Pincode]; ok {
		return fmt.Errorf("pincode %d: %w", r.Pincode, domain.ErrDuplicate)
	}
	s.pincodes[r.Pincode] = r
	return nil
}

// MarkReady closes the load phase and opens the store to readers.
func (s *Store) MarkReady() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready.Store(true)
}

func (s *Store) Ready() bool { return s.ready.Load() }

func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{Products: len(s.products), Inventory: len(s.inventory), Pincodes: len(s.pincodes)}
}

func (s *Store) Product(id int) (*ProductEntry, error) {
	if !s.ready.Load() {
		return nil, domain.ErrNotReady
	}
	e, ok := s.productByID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (s *Store) Products() ([]*ProductEntry, error) {
	if !s.ready.Load() {
		return nil, domain.ErrNotReady
	}
	return slices.Clone(s.products), nil
}

func (s *Store) ProductPage(page, limit int) (Page[*ProductEntry], error) {
	if !s.ready.Load() {
		return Page[*ProductEntry]{}, domain.ErrNotReady
	}
	return pageOf(s.products, page, limit), nil
}

func (s *Store) Inventory(id int) (domain.InventoryRecord, error) {
	if !s.ready.Load() {
		return domain.InventoryRecord{}, domain.ErrNotReady
	}
	i, ok := s.inventoryAt[id]
	if !ok {
		return domain.InventoryRecord{}, domain.ErrNotFound
	}
	return s.inventory[i], nil
}

func (s *Store) InventoryPage(page, limit int) (Page[domain.InventoryRecord], error) {
	if !s.ready.Load() {
		return Page[domain.InventoryRecord]{}, domain.ErrNotReady
	}
	return pageOf(s.inventory, page, limit), nil
}

func (s *Store) Pincode(pin int) (domain.PincodeRecord, error) {
	if !s.ready.Load() {
		return domain.PincodeRecord{}, domain.ErrNotReady
	}
	r, ok := s.pincodes[pin]
	if !ok {
		return domain.PincodeRecord{}, domain.ErrNotFound
	}
	return r, nil
}

func pageOf[T any](all []T, page, limit int) Page[T] {
	w := rules.Paginate(page, limit, len(all))
	return Page[T]{
		Items:  slices.Clone(all[w.Start:w.End]),
		Window: w,
		Total:  len(all),
	}
}
