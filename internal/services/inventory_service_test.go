package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicart/internal/domain"
	"clinicart/internal/rules"
	"clinicart/internal/services"
	"clinicart/internal/store"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func pincodeStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New()
	for _, r := range []domain.PincodeRecord{
		{Pincode: 110001, LogisticsProvider: "Provider A", TurnAroundTime: "2"},
		{Pincode: 400001, LogisticsProvider: "Provider B", TurnAroundTime: "3"},
		{Pincode: 560001, LogisticsProvider: "Provider C", TurnAroundTime: "5"},
	} {
		require.NoError(t, st.AddPincode(r))
	}
	for i := 1; i <= 25; i++ {
		require.NoError(t, st.AddInventory(domain.InventoryRecord{ID: i, StockAvailable: true}))
	}
	st.MarkReady()
	return st
}

func newInventoryService(st *store.Store) *services.InventoryService {
	pol := services.DefaultPolicy()
	pol.Location = ist
	return services.NewInventoryService(st, services.NewPolicyStore(pol))
}

func TestCheckPincode_SameDayWindow(t *testing.T) {
	svc := newInventoryService(pincodeStore(t))

	tests := []struct {
		name     string
		pin      int
		now      time.Time
		eligible bool
		expiry   int64
	}{
		{"A before cutoff", 110001, time.Date(2025, 3, 14, 16, 0, 0, 0, ist), true, 3600},
		{"A after cutoff", 110001, time.Date(2025, 3, 14, 17, 0, 1, 0, ist), false, 0},
		{"B early morning", 400001, time.Date(2025, 3, 14, 8, 59, 0, 0, ist), true, 60},
		{"B after nine", 400001, time.Date(2025, 3, 14, 10, 0, 0, 0, ist), false, 0},
		{"unknown provider", 560001, time.Date(2025, 3, 14, 1, 0, 0, 0, ist), false, 0},
		// 10:00 UTC is 15:30 in the delivery zone.
		{"clock in another zone", 110001, time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC), true, 5400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := svc.CheckPincode(tt.pin, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.eligible, d.IsSameDayDeliveryPossible)
			assert.Equal(t, tt.expiry, d.ExpiryTimeForSameDayDelivery)
			assert.Equal(t, tt.pin, d.Pincode)
		})
	}
}

func TestCheckPincode_EvaluatedPerCall(t *testing.T) {
	svc := newInventoryService(pincodeStore(t))

	d, err := svc.CheckPincode(110001, time.Date(2025, 3, 14, 12, 0, 0, 0, ist))
	require.NoError(t, err)
	assert.True(t, d.IsSameDayDeliveryPossible)

	d, err = svc.CheckPincode(110001, time.Date(2025, 3, 14, 18, 0, 0, 0, ist))
	require.NoError(t, err)
	assert.False(t, d.IsSameDayDeliveryPossible)
}

func TestCheckPincode_PolicyReload(t *testing.T) {
	st := pincodeStore(t)
	pol := services.DefaultPolicy()
	pol.Location = ist
	ps := services.NewPolicyStore(pol)
	svc := services.NewInventoryService(st, ps)
	now := time.Date(2025, 3, 14, 19, 0, 0, 0, ist)

	d, err := svc.CheckPincode(110001, now)
	require.NoError(t, err)
	assert.False(t, d.IsSameDayDeliveryPossible)

	ps.Set(&services.Policy{Cutoffs: rules.Cutoffs{"Provider A": 20}, Location: ist})
	d, err = svc.CheckPincode(110001, now)
	require.NoError(t, err)
	assert.True(t, d.IsSameDayDeliveryPossible)
	assert.Equal(t, int64(3600), d.ExpiryTimeForSameDayDelivery)
}

func TestCheckPincode_Errors(t *testing.T) {
	svc := newInventoryService(pincodeStore(t))
	_, err := svc.CheckPincode(999999, time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	loading := newInventoryService(store.New())
	_, err = loading.CheckPincode(110001, time.Now())
	assert.ErrorIs(t, err, domain.ErrNotReady)
	_, err = loading.ListInventory(1, 10)
	assert.ErrorIs(t, err, domain.ErrNotReady)
}

func TestListInventory(t *testing.T) {
	svc := newInventoryService(pincodeStore(t))

	pg, err := svc.ListInventory(3, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, pg.CurrentPage)
	assert.Equal(t, 3, pg.TotalPages)
	assert.Equal(t, 25, pg.TotalProducts)
	assert.Len(t, pg.ProductsInventoryData, 5)

	pg, err = svc.ListInventory(4, 10)
	require.NoError(t, err)
	assert.NotNil(t, pg.ProductsInventoryData)
	assert.Empty(t, pg.ProductsInventoryData)

	rec, err := svc.GetInventory(7)
	require.NoError(t, err)
	assert.Equal(t, 7, rec.ID)
	_, err = svc.GetInventory(700)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
