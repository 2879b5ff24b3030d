package domain

import "github.com/shopspring/decimal"

type ReceiptLine struct {
	Name      string
	Quantity  int
	LineTotal decimal.Decimal
}

type Receipt struct {
	Lines       []ReceiptLine
	Subtotal    decimal.Decimal
	Shipping    decimal.Decimal
	Total       decimal.Decimal
	BalanceLeft decimal.Decimal
}
