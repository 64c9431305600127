package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"clinicart/internal/domain"
	"clinicart/internal/http/handlers"
	"clinicart/internal/services"
	"clinicart/internal/store"
)

var ist = time.FixedZone("IST", 5*3600+1800)

// Mid-morning on a day inside the default Diwali window.
var diwaliMorning = time.Date(2024, time.October, 30, 10, 0, 0, 0, ist)

type fixture struct {
	app    *fiber.App
	store  *store.Store
	policy *services.PolicyStore
}

func seedStore(t *testing.T, st *store.Store) {
	t.Helper()
	for i := 1; i <= 25; i++ {
		require.NoError(t, st.AddProduct(domain.Product{
			ID:          i,
			Name:        "Product " + strconv.Itoa(i),
			Price:       decimal.NewFromInt(int64(i * 100)),
			Category:    "Serums",
			Description: []string{"Lightweight serum."},
			Images:      []string{"serum.jpeg"},
			Rating:      4.2,
		}))
		require.NoError(t, st.AddInventory(domain.InventoryRecord{
			ID:                  i,
			StockAvailable:      i != 5,
			AreOnlyFewItemsLeft: i == 7,
		}))
	}
	for _, r := range []domain.PincodeRecord{
		{Pincode: 110001, LogisticsProvider: "Provider A", TurnAroundTime: "2"},
		{Pincode: 400001, LogisticsProvider: "Provider B", TurnAroundTime: "3"},
		{Pincode: 560001, LogisticsProvider: "Provider C", TurnAroundTime: "5"},
	} {
		require.NoError(t, st.AddPincode(r))
	}
}

func newFixture(t *testing.T, ready bool, cfg handlers.AppConfig) *fixture {
	t.Helper()
	st := store.New()
	seedStore(t, st)
	if ready {
		st.MarkReady()
	}
	pol := services.DefaultPolicy()
	pol.Location = ist
	ps := services.NewPolicyStore(pol)

	deps := handlers.NewDeps(st, ps, handlers.Options{
		Now:         func() time.Time { return diwaliMorning },
		MaxPageSize: 100,
		APIDocsDir:  "../../api",
	})
	if cfg.Views == nil {
		cfg.Views = html.New("../../web/templates", ".html")
	}
	return &fixture{app: handlers.NewApp(deps, cfg), store: st, policy: ps}
}

func (f *fixture) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := f.app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}
