package catalog

import (
	"strconv"

	"github.com/angelmondragon/arbuz-storefront/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Measure is the tagged magnitude of a product: a count for quantity products,
// a decimal amount for volume and weight products. Only the field matching the
// unit is ever populated.
type Measure struct {
	unit   enums.ProductUnit
	count  int
	amount decimal.Decimal
}

func QuantityOf(n int) Measure {
	return Measure{unit: enums.ProductUnitQuantity, count: n}
}

func VolumeOf(amount decimal.Decimal) Measure {
	return Measure{unit: enums.ProductUnitVolume, amount: amount}
}

func WeightOf(amount decimal.Decimal) Measure {
	return Measure{unit: enums.ProductUnitWeight, amount: amount}
}

// Unit reports the active magnitude. The zero Measure counts as quantity.
func (m Measure) Unit() enums.ProductUnit {
	if m.unit == "" {
		return enums.ProductUnitQuantity
	}
	return m.unit
}

// Count returns the item count; ok is false for volume and weight measures.
func (m Measure) Count() (int, bool) {
	if m.Unit() != enums.ProductUnitQuantity {
		return 0, false
	}
	return m.count, true
}

// Amount returns the volume or weight; ok is false for quantity measures.
func (m Measure) Amount() (decimal.Decimal, bool) {
	if m.Unit() == enums.ProductUnitQuantity {
		return decimal.Zero, false
	}
	return m.amount, true
}

// String renders the count as an integer and amounts with one decimal place.
func (m Measure) String() string {
	if n, ok := m.Count(); ok {
		return strconv.Itoa(n)
	}
	return m.amount.StringFixed(1)
}

func (m Measure) normalized() Measure {
	if m.unit == "" {
		return QuantityOf(defaultQuantity)
	}
	return m
}

const defaultQuantity = 1

// Product is a single catalog entry together with its per-session selection state.
type Product struct {
	ID              uuid.UUID
	Name            string
	Measure         Measure
	DisplayQuantity string
	Image           string
	Selected        bool
	Selectable      bool
}

type ProductOption func(*Product)

// WithID pins the identifier instead of generating one.
func WithID(id uuid.UUID) ProductOption {
	return func(p *Product) { p.ID = id }
}

func WithImage(name string) ProductOption {
	return func(p *Product) { p.Image = name }
}

// NotSelectable makes selection toggles a no-op for the product.
func NotSelectable() ProductOption {
	return func(p *Product) { p.Selectable = false }
}

// NewProduct builds an unselected, selectable product with a fresh id.
func NewProduct(name, displayQuantity string, measure Measure, opts ...ProductOption) Product {
	p := Product{
		ID:              uuid.New(),
		Name:            name,
		Measure:         measure.normalized(),
		DisplayQuantity: displayQuantity,
		Selectable:      true,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
