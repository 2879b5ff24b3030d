package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalog "github.com/dwikikusuma/retail-checkout/internal/catalog/domain"
)

var (
	ErrProductExpired    = errors.New("product is expired")
	ErrInsufficientStock = errors.New("not enough stock")
)

// Item is one cart line: a non-owning reference to a catalog product plus
// the quantity requested.
type Item struct {
	Product  *catalog.Product
	Quantity int
}

func (it Item) LineTotal() decimal.Decimal {
	return it.Product.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Cart is an ordered sequence of lines; insertion order is receipt order.
// It assumes a single logical thread of control, no internal locking.
type Cart struct {
	id    string
	items []Item
}

func NewCart() *Cart {
	return &Cart{id: uuid.NewString()}
}

func (c *Cart) ID() string { return c.id }

// Add appends a new line for the product. It validates against the
// product's live stock, not against quantity already held by earlier
// lines of this cart, so two Add calls for the same product can commit
// more than the stock on hand. Stock itself is untouched until checkout.
func (c *Cart) Add(p *catalog.Product, quantity int) error {
	if p.Expired(time.Now()) {
		return fmt.Errorf("%s: %w", p.Name, ErrProductExpired)
	}
	if quantity > p.Stock {
		return fmt.Errorf("%s: %w", p.Name, ErrInsufficientStock)
	}
	c.items = append(c.items, Item{Product: p, Quantity: quantity})
	return nil
}

func (c *Cart) Items() []Item { return c.items }

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

func (c *Cart) Clear() { c.items = c.items[:0] }

// Subtotal sums the line totals in insertion order.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}
