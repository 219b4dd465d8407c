package customer_test

import (
	"testing"
	"time"

	"pizzabot/internal/core/domain/model/customer"
	"pizzabot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("trims_name_and_phone", func(t *testing.T) {
		c, err := customer.NewCustomer("  Ayesha  ", " 0300-1234567 ")
		require.NoError(t, err)

		assert.Equal(t, "Ayesha", c.Name())
		assert.Equal(t, "0300-1234567", c.Phone())
		assert.Zero(t, c.ID())
		assert.False(t, c.CreatedAt().IsZero())
	})

	t.Run("empty_phone_is_absent", func(t *testing.T) {
		c, err := customer.NewCustomer("Bilal", "   ")
		require.NoError(t, err)
		assert.Empty(t, c.Phone())
	})

	t.Run("blank_name_is_rejected", func(t *testing.T) {
		_, err := customer.NewCustomer("   ", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCustomer_Validate(t *testing.T) {
	c, err := customer.NewCustomer("Ayesha", "")
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	var zero customer.Customer
	require.Error(t, zero.Validate())
}

func TestRestoreCustomer(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := customer.RestoreCustomer(5, "Ayesha", "0300-1234567", created)

	require.NoError(t, c.Validate())
	assert.Equal(t, int64(5), c.ID())
	assert.Equal(t, created, c.CreatedAt())
}

func TestCustomer_SetID(t *testing.T) {
	c, err := customer.NewCustomer("Ayesha", "")
	require.NoError(t, err)

	c.SetID(7)
	c.SetID(9) // ignored once assigned

	assert.Equal(t, int64(7), c.ID())
}
