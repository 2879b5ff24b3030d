package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	cartdomain "github.com/dwikikusuma/retail-checkout/internal/cart/domain"
	"github.com/dwikikusuma/retail-checkout/internal/checkout/domain"
	"github.com/dwikikusuma/retail-checkout/internal/shipping"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// CartView is the slice of the cart the processor needs: its lines in
// insertion order, and the ability to empty it after a sale.
type CartView interface {
	IsEmpty() bool
	Items() []cartdomain.Item
	Clear()
}

// Account is the balance holder a sale is charged against.
type Account interface {
	Balance() decimal.Decimal
	Deduct(amount decimal.Decimal)
}

// Service runs the checkout pipeline: validate, price, deduct, ship,
// print the receipt, clear the cart. It holds no per-checkout state and
// is reusable across calls.
type Service struct {
	out io.Writer
}

func NewService(out io.Writer) *Service {
	if out == nil {
		out = os.Stdout
	}
	return &Service{out: out}
}

// Checkout prices the cart, charges the account, emits the shipment
// notice and receipt to the sink, and clears the cart.
//
// Stock is decremented while pricing, before the balance is verified. A
// balance failure therefore leaves stock already decremented; expiry and
// stock are not re-checked here either, both matching add-time-validation
// semantics the callers rely on.
func (s *Service) Checkout(account Account, cart CartView) (domain.Receipt, error) {
	if cart.IsEmpty() {
		return domain.Receipt{}, ErrEmptyCart
	}

	items := cart.Items()
	lines := make([]domain.ReceiptLine, 0, len(items))
	subtotal := decimal.Zero
	var manifest shipping.Manifest

	for _, it := range items {
		p := it.Product
		p.DecreaseStock(it.Quantity)

		lineTotal := it.LineTotal()
		subtotal = subtotal.Add(lineTotal)
		lines = append(lines, domain.ReceiptLine{
			Name:      p.Name,
			Quantity:  it.Quantity,
			LineTotal: lineTotal,
		})

		if p.Shippable() {
			manifest.Append(shipping.Unit{Name: p.Name, Weight: p.Weight}, it.Quantity)
		}
	}

	shippingFee := shipping.Fee(len(manifest.Units()))
	total := subtotal.Add(shippingFee)

	if account.Balance().LessThan(total) {
		return domain.Receipt{}, fmt.Errorf("amount %s exceeds balance %s: %w",
			total.StringFixed(0), account.Balance().StringFixed(0), ErrInsufficientBalance)
	}
	account.Deduct(total)

	manifest.WriteNotice(s.out)

	receipt := domain.Receipt{
		Lines:       lines,
		Subtotal:    subtotal,
		Shipping:    shippingFee,
		Total:       total,
		BalanceLeft: account.Balance(),
	}
	s.writeReceipt(receipt)

	cart.Clear()
	return receipt, nil
}

func (s *Service) writeReceipt(r domain.Receipt) {
	fmt.Fprintln(s.out, "** Checkout receipt **")
	for _, ln := range r.Lines {
		fmt.Fprintf(s.out, "%dx %s\t%s\n", ln.Quantity, ln.Name, ln.LineTotal.StringFixed(0))
	}
	fmt.Fprintln(s.out, "----------------------")
	fmt.Fprintf(s.out, "Subtotal\t%s\n", r.Subtotal.StringFixed(0))
	fmt.Fprintf(s.out, "Shipping\t%s\n", r.Shipping.StringFixed(0))
	fmt.Fprintf(s.out, "Amount\t\t%s\n", r.Total.StringFixed(0))
	fmt.Fprintf(s.out, "Balance left\t%s\n", r.BalanceLeft.StringFixed(0))
}
