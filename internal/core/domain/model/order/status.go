package order

import (
	"fmt"
	"strings"

	"pizzabot/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It is stored as text so
// the schema stays forward compatible, but the set of accepted values is
// closed: ParseStatus and Validate reject anything outside it.
type Status string

const (
	// StatusDraft is the initial status: the customer is still building the order.
	StatusDraft Status = "draft"

	// StatusPlaced means the order has been checked out and handed to the kitchen.
	StatusPlaced Status = "placed"

	// StatusPreparing means the kitchen has started working on the order.
	StatusPreparing Status = "preparing"

	// StatusBaking means the order is in the oven.
	StatusBaking Status = "baking"

	// StatusOutForDelivery means a courier is on the way (delivery orders only).
	StatusOutForDelivery Status = "out_for_delivery"

	// StatusDelivered is the terminal state for delivery orders.
	StatusDelivered Status = "delivered"

	// StatusReadyForPickup is the terminal state for pickup orders.
	StatusReadyForPickup Status = "ready_for_pickup"

	// StatusCancelled is reachable from any non-terminal state.
	StatusCancelled Status = "cancelled"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusDraft:          {},
		StatusPlaced:         {},
		StatusPreparing:      {},
		StatusBaking:         {},
		StatusOutForDelivery: {},
		StatusDelivered:      {},
		StatusReadyForPickup: {},
		StatusCancelled:      {},
	}
}

// ParseStatus normalizes raw input (trimmed, lowercased) and validates it
// against the closed status set. Unknown values are a validation error.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks membership in the closed status set.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the persisted text form of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further progression is expected.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusReadyForPickup || s == StatusCancelled
}

// NextStage returns the next status in the advisory kitchen progression for
// the given delivery type. The second result is false when the current status
// has no automatic successor: draft, terminal states, and out_for_delivery,
// where delivery confirmation stays a manual operator action.
func (s Status) NextStage(deliveryType DeliveryType) (Status, bool) {
	switch s {
	case StatusPlaced:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusBaking, true
	case StatusBaking:
		if deliveryType == DeliveryTypePickup {
			return StatusReadyForPickup, true
		}
		return StatusOutForDelivery, true
	default:
		return "", false
	}
}
