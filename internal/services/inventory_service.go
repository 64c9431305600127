package services

import (
	"time"

	"clinicart/internal/domain"
	"clinicart/internal/rules"
	"clinicart/internal/store"
)

type InventoryService struct {
	Store  *store.Store
	Policy *PolicyStore
}

func NewInventoryService(st *store.Store, policy *PolicyStore) *InventoryService {
	return &InventoryService{Store: st, Policy: policy}
}

func (s *InventoryService) ListInventory(page, limit int) (domain.InventoryPage, error) {
	pg, err := s.Store.InventoryPage(page, limit)
	if err != nil {
		return domain.InventoryPage{}, err
	}
	items := pg.Items
	if items == nil {
		items = []domain.InventoryRecord{}
	}
	return domain.InventoryPage{
		CurrentPage:           pg.Window.Page,
		TotalPages:            pg.Window.TotalPages,
		TotalProducts:         pg.Total,
		ProductsInventoryData: items,
	}, nil
}

func (s *InventoryService) GetInventory(id int) (domain.InventoryRecord, error) {
	return s.Store.Inventory(id)
}

// CheckPincode looks up who serves pin and whether they can still deliver
// today. Eligibility is computed from now on every call.
func (s *InventoryService) CheckPincode(pin int, now time.Time) (domain.Delivery, error) {
	rec, err := s.Store.Pincode(pin)
	if err != nil {
		return domain.Delivery{}, err
	}
	pol := s.Policy.Load()
	ok, remaining := pol.Cutoffs.SameDay(rec.LogisticsProvider, now.In(pol.Location))
	return domain.Delivery{
		PincodeRecord:                rec,
		IsSameDayDeliveryPossible:    ok,
		ExpiryTimeForSameDayDelivery: rules.Seconds(remaining),
	}, nil
}
