package queries

import (
	"errors"

	"pizzabot/internal/pkg/errs"
	"pizzabot/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// Limit bounds for order listings. DefaultOrderListLimit applies when the
// caller passes zero.
const (
	DefaultOrderListLimit = 50
	MaxOrderListLimit     = 200
)

// ListOrdersQuery retrieves recent orders, most recent first.
type ListOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates the query. A zero limit selects the default;
// negative or oversized limits are rejected.
func NewListOrdersQuery(limit int) (ListOrdersQuery, error) {
	if limit == 0 {
		limit = DefaultOrderListLimit
	}

	if limit < 0 || limit > MaxOrderListLimit {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxOrderListLimit)
	}

	return ListOrdersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Limit returns the effective row bound.
func (q ListOrdersQuery) Limit() int { return q.limit }
