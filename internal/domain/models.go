package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers, matching what the mobile client parses.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	Price           decimal.Decimal  `json:"price"`
	Category        string           `json:"category"`
	Description     []string         `json:"description"`
	Images          []string         `json:"images"`
	Rating          float64          `json:"rating"`
	Offers          []Offer          `json:"offers"`
	DiscountedPrice *decimal.Decimal `json:"discountedPrice,omitempty"`
}

// HasValidOffer reports whether any offer of the given type is active, ignoring case.
func (p Product) HasValidOffer(kind string) bool {
	for _, o := range p.Offers {
		if o.IsValid && strings.EqualFold(o.Type, kind) {
			return true
		}
	}
	return false
}

// OnOffer reports whether the product should be shown at its discounted price.
func (p Product) OnOffer() bool {
	if p.DiscountedPrice == nil {
		return false
	}
	for _, o := range p.Offers {
		if o.IsValid {
			return true
		}
	}
	return false
}

type Offer struct {
	Type               string           `json:"type"`
	IsValid            bool             `json:"isValid"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage,omitempty"`
}

type InventoryRecord struct {
	ID                  int  `json:"id"`
	StockAvailable      bool `json:"stockAvailable"`
	AreOnlyFewItemsLeft bool `json:"areOnlyFewItemsLeft"`
}

type PincodeRecord struct {
	Pincode           int    `json:"pincode"`
	LogisticsProvider string `json:"logisticsProvider"`
	TurnAroundTime    string `json:"turnAroundTime"`
}

// Delivery is a PincodeRecord with same-day fields evaluated at request time.
type Delivery struct {
	PincodeRecord
	IsSameDayDeliveryPossible    bool  `json:"isSameDayDeliveryPossible"`
	ExpiryTimeForSameDayDelivery int64 `json:"expiryTimeForSameDayDelivery"` // seconds
}

type ProductPage struct {
	CurrentPage   int       `json:"currentPage"`
	TotalPages    int       `json:"totalPages"`
	TotalProducts int       `json:"totalProducts"`
	ProductsData  []Product `json:"productsData"`
}

type InventoryPage struct {
	CurrentPage           int               `json:"currentPage"`
	TotalPages            int               `json:"totalPages"`
	TotalProducts         int               `json:"totalProducts"`
	ProductsInventoryData []InventoryRecord `json:"productsInventoryData"`
}
