package shipping

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// FeePerUnit is the flat fee charged for every physical unit shipped.
var FeePerUnit = decimal.NewFromInt(10)

// Unit is one physical instance of a shippable product line. A cart line
// of quantity N contributes N units.
type Unit struct {
	Name   string
	Weight float64 // kilograms
}

// Manifest accumulates shipping units in the order they were priced.
type Manifest struct {
	units []Unit
}

func (m *Manifest) Append(u Unit, count int) {
	for i := 0; i < count; i++ {
		m.units = append(m.units, u)
	}
}

func (m *Manifest) Units() []Unit { return m.units }

func (m *Manifest) IsEmpty() bool { return len(m.units) == 0 }

func (m *Manifest) TotalWeight() float64 {
	var total float64
	for _, u := range m.units {
		total += u.Weight
	}
	return total
}

// Fee returns the flat per-unit fee multiplied by the unit count.
func Fee(unitCount int) decimal.Decimal {
	return FeePerUnit.Mul(decimal.NewFromInt(int64(unitCount)))
}

// WriteNotice prints one line per unit with its weight in grams, then the
// total package weight in kilograms. An empty manifest writes nothing.
func (m *Manifest) WriteNotice(w io.Writer) {
	if len(m.units) == 0 {
		return
	}
	fmt.Fprintln(w, "** Shipment notice **")
	for _, u := range m.units {
		fmt.Fprintf(w, "%s\t%.0fg\n", u.Name, u.Weight*1000)
	}
	fmt.Fprintf(w, "Total package weight %.1fkg\n\n", m.TotalWeight())
}
