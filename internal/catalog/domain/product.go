package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind is the closed set of product variants. Expiry and shipping
// behavior dispatch on the kind, never on runtime type inspection.
type Kind int

const (
	KindExpirable Kind = iota
	KindNonExpirable
	KindDigital
)

type Product struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Stock     int

	Kind   Kind
	Expiry time.Time // meaningful for KindExpirable only
	Weight float64   // kilograms; meaningful for shippable kinds only
}

func NewExpirable(name string, price decimal.Decimal, stock int, expiry time.Time, weight float64) *Product {
	return &Product{
		ID:        uuid.NewString(),
		Name:      name,
		UnitPrice: price,
		Stock:     stock,
		Kind:      KindExpirable,
		Expiry:    expiry,
		Weight:    weight,
	}
}

func NewNonExpirable(name string, price decimal.Decimal, stock int, weight float64) *Product {
	return &Product{
		ID:        uuid.NewString(),
		Name:      name,
		UnitPrice: price,
		Stock:     stock,
		Kind:      KindNonExpirable,
		Weight:    weight,
	}
}

func NewDigital(name string, price decimal.Decimal, stock int) *Product {
	return &Product{
		ID:        uuid.NewString(),
		Name:      name,
		UnitPrice: price,
		Stock:     stock,
		Kind:      KindDigital,
	}
}

// Expired reports whether the product has passed its expiry date. The
// comparison is strict: the product is still good on the expiry date
// itself, and only expirable products ever expire.
func (p *Product) Expired(now time.Time) bool {
	return p.Kind == KindExpirable && now.After(p.Expiry)
}

// Shippable reports whether the product requires physical shipment.
func (p *Product) Shippable() bool {
	return p.Kind == KindExpirable || p.Kind == KindNonExpirable
}

// DecreaseStock subtracts q from the stock on hand. There is no lower
// bound here; callers validate quantity against Stock before committing.
func (p *Product) DecreaseStock(q int) {
	p.Stock -= q
}
