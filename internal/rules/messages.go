package rules

import (
	"fmt"
	"time"

	"clinicart/internal/domain"
)

const (
	MsgDeliverableToday    = "Deliverable Today"
	MsgPincodeNotFound     = "Pincode Not found"
	MsgUnknownAvailability = "Unknown Availability in Pincode"

	LabelBuyNow   = "Buy Now"
	LabelPreOrder = "PreOrder"
)

// Availability is the delivery line shown for a pincode lookup that succeeded.
func Availability(d domain.Delivery) string {
	if d.IsSameDayDeliveryPossible {
		return MsgDeliverableToday
	}
	return fmt.Sprintf("Deliverable in %s days", d.TurnAroundTime)
}

// Countdown renders the time left to order for same-day delivery. It is empty
// once the window has closed.
func Countdown(seconds int64) string {
	if seconds <= 0 {
		return ""
	}
	d := time.Duration(seconds) * time.Second
	h := int(d / time.Hour)
	m := int(d%time.Hour) / int(time.Minute)
	return fmt.Sprintf("%d hours %d mins left for same day delivery", h, m)
}

func BuyLabel(inStock bool) string {
	if inStock {
		return LabelBuyNow
	}
	return LabelPreOrder
}
