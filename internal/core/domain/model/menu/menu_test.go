package menu_test

import (
	"os"
	"path/filepath"
	"testing"

	"pizzabot/internal/core/domain/model/menu"
	"pizzabot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
pizzas:
  - id: margherita
    name: Margherita
    description: Classic tomato and mozzarella
    sizes:
      small: 500
      medium: 800
      large: 1100
  - id: pepperoni
    name: Pepperoni
    sizes:
      small: 650
      medium: 950
      large: 1250
extras:
  - id: garlic_bread
    name: Garlic Bread
    price: 150
  - id: cola
    name: Cola
    price: 120
delivery_fee: 200
tax_percent: 0.05
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("parses_yaml_catalog", func(t *testing.T) {
		m, err := menu.Load(writeCatalog(t, sampleCatalog))
		require.NoError(t, err)

		assert.Len(t, m.Pizzas(), 2)
		assert.Len(t, m.Extras(), 2)
		assert.Equal(t, 200, m.DeliveryFee())
		assert.InDelta(t, 0.05, m.TaxPercent(), 1e-9)
	})

	t.Run("parses_json_catalog", func(t *testing.T) {
		jsonCatalog := `{
			"pizzas": [{"id": "margherita", "name": "Margherita", "sizes": {"small": 500, "medium": 800, "large": 1100}}],
			"extras": [{"id": "cola", "name": "Cola", "price": 120}],
			"delivery_fee": 200,
			"tax_percent": 0.05
		}`
		m, err := menu.Load(writeCatalog(t, jsonCatalog))
		require.NoError(t, err)
		assert.Len(t, m.Pizzas(), 1)
		assert.Equal(t, 200, m.DeliveryFee())
	})

	t.Run("missing_file_is_config_error", func(t *testing.T) {
		_, err := menu.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, errs.ErrConfigIsInvalid)
	})

	t.Run("malformed_file_is_config_error", func(t *testing.T) {
		_, err := menu.Load(writeCatalog(t, "pizzas: [oops"))
		require.ErrorIs(t, err, errs.ErrConfigIsInvalid)
	})

	t.Run("negative_fee_is_config_error", func(t *testing.T) {
		_, err := menu.Load(writeCatalog(t, "delivery_fee: -5"))
		require.ErrorIs(t, err, errs.ErrConfigIsInvalid)
	})
}

func TestMenu_Find(t *testing.T) {
	m, err := menu.Load(writeCatalog(t, sampleCatalog))
	require.NoError(t, err)

	t.Run("lookup_is_case_insensitive", func(t *testing.T) {
		upper, okUpper := m.FindPizza("MARGHERITA")
		lower, okLower := m.FindPizza("margherita")

		require.True(t, okUpper)
		require.True(t, okLower)
		assert.Equal(t, lower, upper)
	})

	t.Run("lookup_trims_whitespace", func(t *testing.T) {
		p, ok := m.FindPizza("  pepperoni ")
		require.True(t, ok)
		assert.Equal(t, "Pepperoni", p.Name)

		e, ok := m.FindExtra(" Cola ")
		require.True(t, ok)
		assert.Equal(t, 120, e.Price)
	})

	t.Run("unknown_id_reports_not_found", func(t *testing.T) {
		_, ok := m.FindPizza("hawaiian")
		assert.False(t, ok)

		_, ok = m.FindExtra("fries")
		assert.False(t, ok)
	})
}

func TestPizza_PriceFor(t *testing.T) {
	m, err := menu.Load(writeCatalog(t, sampleCatalog))
	require.NoError(t, err)

	p, ok := m.FindPizza("margherita")
	require.True(t, ok)

	for size, want := range map[string]int{
		menu.SizeSmall:  500,
		menu.SizeMedium: 800,
		menu.SizeLarge:  1100,
	} {
		price, ok := p.PriceFor(size)
		require.True(t, ok, size)
		assert.Equal(t, want, price)
	}

	_, ok = p.PriceFor("extra_large")
	assert.False(t, ok)
}

func TestMenu_AccessorsReturnCopies(t *testing.T) {
	m, err := menu.Load(writeCatalog(t, sampleCatalog))
	require.NoError(t, err)

	pizzas := m.Pizzas()
	pizzas[0].Name = "Tampered"

	fresh := m.Pizzas()
	assert.Equal(t, "Margherita", fresh[0].Name)
}

func TestMenu_ChatText(t *testing.T) {
	m, err := menu.Load(writeCatalog(t, sampleCatalog))
	require.NoError(t, err)

	text := m.ChatText()
	assert.Contains(t, text, "Margherita (margherita)")
	assert.Contains(t, text, "S 500 / M 800 / L 1100")
	assert.Contains(t, text, "Garlic Bread (garlic_bread): 150")
	assert.Contains(t, text, "Delivery fee: 200")
}
