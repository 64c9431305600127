package rules_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"clinicart/internal/rules"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestOfferWindow_ValidAt(t *testing.T) {
	w := rules.DefaultOffers()[0]

	assert.False(t, w.ValidAt(w.Start.Add(-time.Nanosecond)), "just before start")
	assert.True(t, w.ValidAt(w.Start), "start is inclusive")
	assert.True(t, w.ValidAt(time.Date(2024, time.October, 30, 18, 0, 0, 0, time.UTC)))
	assert.True(t, w.ValidAt(w.End), "end is inclusive")
	assert.False(t, w.ValidAt(w.End.Add(time.Nanosecond)), "just after end")
}

func TestMaxDiscount(t *testing.T) {
	twenty := dec("20")
	five := dec("5")

	assert.True(t, rules.MaxDiscount(rules.DefaultDiscount, nil).Equal(dec("10")))
	assert.True(t, rules.MaxDiscount(rules.DefaultDiscount, rules.DefaultOffers()).Equal(dec("10")))
	assert.True(t, rules.MaxDiscount(rules.DefaultDiscount, []rules.OfferWindow{
		{Type: "Holi", DiscountPercentage: &five},
		{Type: "Diwali", DiscountPercentage: &twenty},
	}).Equal(twenty))
}

func TestDiscountedPrice(t *testing.T) {
	assert.Equal(t, "900", rules.DiscountedPrice(dec("1000"), dec("10")).String())
	assert.Equal(t, "111.11", rules.DiscountedPrice(dec("123.45"), dec("10")).String())
	assert.Equal(t, "0", rules.DiscountedPrice(dec("0"), dec("10")).String())
}

func TestPriceMemo_IsIdempotent(t *testing.T) {
	var m rules.PriceMemo
	calls := 0

	first := m.Get(func() decimal.Decimal {
		calls++
		return rules.DiscountedPrice(dec("1000"), rules.DefaultDiscount)
	})
	second := m.Get(func() decimal.Decimal {
		calls++
		return dec("1")
	})

	assert.True(t, first.Equal(dec("900")))
	assert.True(t, second.Equal(dec("900")))
	assert.Equal(t, 1, calls)
}
