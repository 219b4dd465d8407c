package order_test

import (
	"testing"
	"time"

	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraftOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(nil, order.DeliveryTypePickup, "", "")
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts_as_draft_with_creation_audit_row", func(t *testing.T) {
		customerID := int64(3)
		o, err := order.NewOrder(&customerID, order.DeliveryTypeDelivery, " 12 Mall Road ", " ring the bell ")
		require.NoError(t, err)

		assert.Equal(t, order.StatusDraft, o.Status())
		assert.Equal(t, order.DeliveryTypeDelivery, o.DeliveryType())
		assert.Equal(t, "12 Mall Road", o.Address())
		assert.Equal(t, "ring the bell", o.Notes())
		assert.Equal(t, &customerID, o.CustomerID())
		assert.False(t, o.HasItems())

		updates := o.Updates()
		require.Len(t, updates, 1)
		assert.Equal(t, order.StatusDraft, updates[0].Status())
		assert.Equal(t, order.CreatedMessage, updates[0].Message())
	})

	t.Run("anonymous_pickup_order", func(t *testing.T) {
		o := newDraftOrder(t)
		assert.Nil(t, o.CustomerID())
		assert.Empty(t, o.Address())
	})

	t.Run("rejects_invalid_delivery_type", func(t *testing.T) {
		_, err := order.NewOrder(nil, order.DeliveryType("drone"), "", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	require.NoError(t, newDraftOrder(t).Validate())

	var zero order.Order
	require.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_AddItem(t *testing.T) {
	o := newDraftOrder(t)
	before := o.UpdatedAt()

	item, err := order.NewPizzaItem("margherita", "Margherita", "medium", 2, 800)
	require.NoError(t, err)
	require.NoError(t, o.AddItem(item))

	require.True(t, o.HasItems())
	items := o.Items()
	require.Len(t, items, 1)
	assert.Equal(t, order.ItemTypePizza, items[0].Type())
	assert.Equal(t, "medium", items[0].Size())
	assert.Equal(t, 2, items[0].Qty())
	assert.Equal(t, 800, items[0].UnitPrice())
	assert.False(t, o.UpdatedAt().Before(before))
}

func TestOrder_SetStatus(t *testing.T) {
	t.Run("appends_one_audit_row_per_change", func(t *testing.T) {
		o := newDraftOrder(t)

		require.NoError(t, o.SetStatus(order.StatusPlaced, "Order placed"))
		require.NoError(t, o.SetStatus(order.StatusPreparing, ""))
		require.NoError(t, o.SetStatus(order.StatusBaking, "in the oven"))

		updates := o.Updates()
		require.Len(t, updates, 4) // creation row + three changes
		assert.Equal(t, order.StatusBaking, o.Status())
		assert.Equal(t, o.Status(), updates[len(updates)-1].Status())
	})

	t.Run("repeated_status_appends_another_row", func(t *testing.T) {
		o := newDraftOrder(t)

		require.NoError(t, o.SetStatus(order.StatusPlaced, "Order placed"))
		require.NoError(t, o.SetStatus(order.StatusPlaced, "Order placed"))

		assert.Len(t, o.Updates(), 3)
		assert.Equal(t, order.StatusPlaced, o.Status())
	})

	t.Run("rejects_status_outside_closed_set", func(t *testing.T) {
		o := newDraftOrder(t)
		err := o.SetStatus(order.Status("frozen"), "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.StatusDraft, o.Status())
		assert.Len(t, o.Updates(), 1)
	})
}

func TestRestoreOrder(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	item := order.RestoreItem(4, order.ItemTypeExtra, "cola", "Cola", "", 3, 120, created)
	update := order.RestoreUpdate(9, order.StatusDraft, order.CreatedMessage, created)

	o, err := order.RestoreOrder(
		11, nil, order.StatusDraft, order.DeliveryTypeDelivery,
		"12 Mall Road", "", created, created,
		[]*order.Item{item}, []*order.Update{update},
	)
	require.NoError(t, err)
	require.NoError(t, o.Validate())

	assert.Equal(t, int64(11), o.ID())
	require.Len(t, o.Items(), 1)
	assert.Equal(t, int64(4), o.Items()[0].ID())
	require.Len(t, o.Updates(), 1)
	assert.Equal(t, int64(9), o.Updates()[0].ID())

	t.Run("rejects_invalid_persisted_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			11, nil, order.Status("bogus"), order.DeliveryTypeDelivery,
			"", "", created, created, nil, nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewItem_Validation(t *testing.T) {
	t.Run("quantity_must_be_at_least_one", func(t *testing.T) {
		_, err := order.NewPizzaItem("margherita", "Margherita", "small", 0, 500)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("unit_price_must_be_positive", func(t *testing.T) {
		_, err := order.NewExtraItem("cola", "Cola", 1, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("pizza_requires_size", func(t *testing.T) {
		_, err := order.NewPizzaItem("margherita", "Margherita", " ", 1, 500)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("extra_has_no_size", func(t *testing.T) {
		item, err := order.NewExtraItem("cola", "Cola", 2, 120)
		require.NoError(t, err)
		assert.Empty(t, item.Size())
		assert.Equal(t, order.ItemTypeExtra, item.Type())
	})
}

func TestItem_SetID(t *testing.T) {
	item, err := order.NewExtraItem("cola", "Cola", 1, 120)
	require.NoError(t, err)

	item.SetID(5)
	item.SetID(6) // ignored once assigned
	assert.Equal(t, int64(5), item.ID())
}
