// Package menu provides the immutable menu catalog: pizzas, extras, the
// delivery fee and the tax rate. The catalog is loaded once at startup from a
// YAML or JSON file and shared read-only by all requests; there are no
// mutation operations.
package menu

import (
	"fmt"
	"os"
	"strings"

	"pizzabot/internal/pkg/errs"

	"github.com/goccy/go-yaml"
)

// Size names accepted for pizza line items.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// Sizes holds the per-size prices of a pizza in whole currency units.
type Sizes struct {
	Small  int `yaml:"small" json:"small"`
	Medium int `yaml:"medium" json:"medium"`
	Large  int `yaml:"large" json:"large"`
}

// Pizza is a catalog entry with one price per size.
type Pizza struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description,omitempty"`
	Sizes       Sizes  `yaml:"sizes" json:"sizes"`
}

// PriceFor returns the unit price for the given size name.
// The size must be one of SizeSmall, SizeMedium, SizeLarge.
func (p Pizza) PriceFor(size string) (int, bool) {
	switch size {
	case SizeSmall:
		return p.Sizes.Small, true
	case SizeMedium:
		return p.Sizes.Medium, true
	case SizeLarge:
		return p.Sizes.Large, true
	default:
		return 0, false
	}
}

// Extra is a single-price catalog entry (drinks, dips, sides).
type Extra struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Price int    `yaml:"price" json:"price"`
}

// Menu is the immutable in-memory catalog. All accessors return copies so
// callers cannot mutate the shared state.
type Menu struct {
	pizzas      []Pizza
	extras      []Extra
	deliveryFee int
	taxPercent  float64
}

// catalogFile mirrors the on-disk catalog document.
type catalogFile struct {
	Pizzas      []Pizza `yaml:"pizzas"`
	Extras      []Extra `yaml:"extras"`
	DeliveryFee int     `yaml:"delivery_fee"`
	TaxPercent  float64 `yaml:"tax_percent"`
}

// New builds a Menu from already-parsed catalog data. It is used by Load and
// directly by tests. The fee and tax rate must be non-negative.
func New(pizzas []Pizza, extras []Extra, deliveryFee int, taxPercent float64) (*Menu, error) {
	if deliveryFee < 0 {
		return nil, errs.NewConfigIsInvalidErrorWithCause("delivery_fee",
			fmt.Errorf("%d is negative", deliveryFee))
	}

	if taxPercent < 0 {
		return nil, errs.NewConfigIsInvalidErrorWithCause("tax_percent",
			fmt.Errorf("%v is negative", taxPercent))
	}

	m := &Menu{
		pizzas:      make([]Pizza, len(pizzas)),
		extras:      make([]Extra, len(extras)),
		deliveryFee: deliveryFee,
		taxPercent:  taxPercent,
	}
	copy(m.pizzas, pizzas)
	copy(m.extras, extras)

	return m, nil
}

// Load reads and parses the catalog file at path. YAML 1.2 is a superset of
// JSON, so both .yaml and .json catalogs are accepted. A missing or malformed
// file is reported as a ConfigIsInvalidError.
func Load(path string) (*Menu, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewConfigIsInvalidErrorWithCause("menu catalog", err)
	}

	var file catalogFile
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return nil, errs.NewConfigIsInvalidErrorWithCause("menu catalog", err)
	}

	return New(file.Pizzas, file.Extras, file.DeliveryFee, file.TaxPercent)
}

// Pizzas returns a copy of the pizza entries.
func (m *Menu) Pizzas() []Pizza {
	pizzas := make([]Pizza, len(m.pizzas))
	copy(pizzas, m.pizzas)
	return pizzas
}

// Extras returns a copy of the extra entries.
func (m *Menu) Extras() []Extra {
	extras := make([]Extra, len(m.extras))
	copy(extras, m.extras)
	return extras
}

// DeliveryFee returns the configured delivery fee in whole currency units.
func (m *Menu) DeliveryFee() int {
	return m.deliveryFee
}

// TaxPercent returns the configured tax rate as a fraction (0.05 = 5%).
func (m *Menu) TaxPercent() float64 {
	return m.taxPercent
}

// FindPizza looks up a pizza by identifier. The match is exact after trimming
// whitespace and lowering case. The boolean result is false when no entry
// matches; lookups never fail with an error.
func (m *Menu) FindPizza(id string) (Pizza, bool) {
	want := normalizeID(id)
	for _, p := range m.pizzas {
		if normalizeID(p.ID) == want {
			return p, true
		}
	}
	return Pizza{}, false
}

// FindExtra looks up an extra by identifier, with the same matching rules as
// FindPizza.
func (m *Menu) FindExtra(id string) (Extra, bool) {
	want := normalizeID(id)
	for _, e := range m.extras {
		if normalizeID(e.ID) == want {
			return e, true
		}
	}
	return Extra{}, false
}

// ChatText renders the catalog as human-readable text for the assistant to
// show customers.
func (m *Menu) ChatText() string {
	var b strings.Builder

	b.WriteString("Menu (prices in PKR):\n")
	b.WriteString("\nPizzas:\n")
	for _, p := range m.pizzas {
		fmt.Fprintf(&b, "- %s (%s): %s | S %d / M %d / L %d\n",
			p.Name, p.ID, p.Description, p.Sizes.Small, p.Sizes.Medium, p.Sizes.Large)
	}

	b.WriteString("\nExtras:\n")
	for _, e := range m.extras {
		fmt.Fprintf(&b, "- %s (%s): %d\n", e.Name, e.ID, e.Price)
	}

	fmt.Fprintf(&b, "\nDelivery fee: %d", m.deliveryFee)

	return b.String()
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
