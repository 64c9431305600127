package client

import (
	"errors"

	"clinicart/internal/domain"
	"clinicart/internal/rules"
)

// DeliveryMessage turns the outcome of a Pincode call into the line shown
// under the pincode box.
func DeliveryMessage(d domain.Delivery, err error) string {
	switch {
	case errors.Is(err, ErrPincodeNotFound):
		return rules.MsgPincodeNotFound
	case err != nil:
		return rules.MsgUnknownAvailability
	}
	return rules.Availability(d)
}
