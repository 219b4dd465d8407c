package order

import (
	"fmt"
	"strings"

	"pizzabot/internal/pkg/errs"
)

// DeliveryType selects how the order reaches the customer. It also decides
// whether the catalog's delivery fee applies at checkout.
type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

// ParseDeliveryType normalizes raw input (trimmed, lowercased) and validates
// it. Anything other than "delivery" or "pickup" is a validation error.
func ParseDeliveryType(raw string) (DeliveryType, error) {
	dt := DeliveryType(strings.ToLower(strings.TrimSpace(raw)))
	if err := dt.Validate(); err != nil {
		return "", err
	}
	return dt, nil
}

// Validate checks that the delivery type is one of the two allowed values.
func (dt DeliveryType) Validate() error {
	if dt != DeliveryTypeDelivery && dt != DeliveryTypePickup {
		return errs.NewValueIsInvalidErrorWithCause("deliveryType",
			fmt.Errorf("%q must be %q or %q", string(dt), DeliveryTypeDelivery, DeliveryTypePickup))
	}
	return nil
}

// String returns the persisted text form of the delivery type.
func (dt DeliveryType) String() string {
	return string(dt)
}
