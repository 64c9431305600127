package rules

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	// DefaultDiscount is the rate applied when no offer carries a higher one.
	DefaultDiscount = decimal.NewFromInt(10)
)

// OfferWindow is a promotional offer active between Start and End, both inclusive.
type OfferWindow struct {
	Type               string
	Start              time.Time
	End                time.Time
	DiscountPercentage *decimal.Decimal
}

func DefaultOffers() []OfferWindow {
	return []OfferWindow{{
		Type:  "Diwali",
		Start: time.Date(2024, time.October, 29, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
	}}
}

func (w OfferWindow) ValidAt(now time.Time) bool {
	return !now.Before(w.Start) && !now.After(w.End)
}

// MaxDiscount returns the largest of def and every explicit offer rate.
func MaxDiscount(def decimal.Decimal, offers []OfferWindow) decimal.Decimal {
	best := def
	for _, o := range offers {
		if o.DiscountPercentage != nil && o.DiscountPercentage.GreaterThan(best) {
			best = *o.DiscountPercentage
		}
	}
	return best
}

// DiscountedPrice applies pct percent off price, rounded to paise.
func DiscountedPrice(price, pct decimal.Decimal) decimal.Decimal {
	return price.Mul(hundred.Sub(pct)).Div(hundred).Round(2)
}

// PriceMemo caches the first discounted price computed for a product. Later
// calls return that value even if compute would now produce another one.
type PriceMemo struct {
	once  sync.Once
	price decimal.Decimal
}

func (m *PriceMemo) Get(compute func() decimal.Decimal) decimal.Decimal {
	m.once.Do(func() { m.price = compute() })
	return m.price
}
