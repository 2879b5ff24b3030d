package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer holds a name and a spendable balance. The balance is mutated
// only by a successful checkout deduction.
type Customer struct {
	id      string
	name    string
	balance decimal.Decimal
}

func NewCustomer(name string, balance decimal.Decimal) *Customer {
	return &Customer{
		id:      uuid.NewString(),
		name:    name,
		balance: balance,
	}
}

func (c *Customer) ID() string { return c.id }

func (c *Customer) Name() string { return c.name }

func (c *Customer) Balance() decimal.Decimal { return c.balance }

func (c *Customer) Deduct(amount decimal.Decimal) {
	c.balance = c.balance.Sub(amount)
}
