package commands_test

import (
	"context"
	"testing"

	"pizzabot/internal/core/application/usecases/commands"
	"pizzabot/internal/core/domain/model/customer"
	"pizzabot/internal/core/domain/model/menu"
	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) RemoveItem(ctx context.Context, itemID int64) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAllInStatus(
	ctx context.Context, statuses ...order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// newTestCatalog builds a small real catalog; the handlers only need lookups
// and the fee/tax accessors.
func newTestCatalog(t *testing.T) *menu.Menu {
	t.Helper()

	pizzas := []menu.Pizza{
		{
			ID:          "margherita",
			Name:        "Margherita",
			Description: "Classic cheese and tomato",
			Sizes:       menu.Sizes{Small: 800, Medium: 1100, Large: 1500},
		},
		{
			ID:          "pepperoni",
			Name:        "Pepperoni",
			Description: "Pepperoni and mozzarella",
			Sizes:       menu.Sizes{Small: 950, Medium: 1300, Large: 1700},
		},
	}
	extras := []menu.Extra{
		{ID: "coke", Name: "Coke (500ml)", Price: 150},
		{ID: "garlic-bread", Name: "Garlic Bread", Price: 350},
	}

	catalog, err := menu.New(pizzas, extras, 200, 0.05)
	require.NoError(t, err)
	return catalog
}

// newDraftOrder creates an unpersisted draft order for handler tests.
func newDraftOrder(t *testing.T, dt order.DeliveryType) *order.Order {
	t.Helper()

	o, err := order.NewOrder(nil, dt, "12 Main Street", "")
	require.NoError(t, err)
	return o
}
