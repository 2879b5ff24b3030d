package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	cartdomain "github.com/dwikikusuma/retail-checkout/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/retail-checkout/internal/catalog/app"
	"github.com/dwikikusuma/retail-checkout/internal/catalog/memory"
	checkoutapp "github.com/dwikikusuma/retail-checkout/internal/checkout/app"
	customerdomain "github.com/dwikikusuma/retail-checkout/internal/customer/domain"
	"github.com/dwikikusuma/retail-checkout/pkg/config"
	"github.com/dwikikusuma/retail-checkout/pkg/logger"
)

type scenario struct {
	name string
	run  func(out io.Writer, log *slog.Logger) error
}

func main() {
	cfg := config.Load()
	log := logger.New(os.Stderr, logger.Options{
		Service: "shop",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log); err != nil {
		log.Error("run failed", slog.Any("err", err))
		os.Exit(1)
	}
}

// run executes the demo scenarios. Each scenario builds its own catalog,
// customer and cart, so they share no mutable state and can run
// concurrently into their own buffers.
func run(ctx context.Context, log *slog.Logger) error {
	scenarios := []scenario{
		{name: "grocery order with shipping", run: runGroceryOrder},
		{name: "digital-only order", run: runDigitalOnly},
		{name: "declined order", run: runDeclined},
	}

	outputs := make([]bytes.Buffer, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	for i, sc := range scenarios {
		i, sc := i, sc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := sc.run(&outputs[i], log.With(slog.String("scenario", sc.name))); err != nil {
				return fmt.Errorf("scenario %q: %w", sc.name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range outputs {
		io.Copy(os.Stdout, &outputs[i])
	}
	return nil
}

func runGroceryOrder(out io.Writer, log *slog.Logger) error {
	catalog := catalogapp.NewService(memory.NewStore())

	cheese, err := catalog.RegisterExpirable("Cheese", decimal.NewFromInt(100), 5, time.Now().AddDate(0, 0, 5), 0.2)
	if err != nil {
		return err
	}
	biscuits, err := catalog.RegisterExpirable("Biscuits", decimal.NewFromInt(150), 2, time.Now().AddDate(0, 0, 2), 0.7)
	if err != nil {
		return err
	}
	if _, err := catalog.RegisterNonExpirable("TV", decimal.NewFromInt(1000), 3, 10); err != nil {
		return err
	}
	scratchCard, err := catalog.RegisterDigital("ScratchCard", decimal.NewFromInt(50), 10)
	if err != nil {
		return err
	}

	buyer := customerdomain.NewCustomer("Ahmed", decimal.NewFromInt(1000))
	cart := cartdomain.NewCart()
	if err := cart.Add(cheese, 2); err != nil {
		return err
	}
	if err := cart.Add(biscuits, 1); err != nil {
		return err
	}
	if err := cart.Add(scratchCard, 1); err != nil {
		return err
	}

	receipt, err := checkoutapp.NewService(out).Checkout(buyer, cart)
	if err != nil {
		return err
	}

	log.Info("checkout complete",
		slog.String("customer", buyer.Name()),
		slog.String("amount", receipt.Total.StringFixed(0)),
		slog.String("balance_left", receipt.BalanceLeft.StringFixed(0)),
	)
	return nil
}

func runDigitalOnly(out io.Writer, log *slog.Logger) error {
	catalog := catalogapp.NewService(memory.NewStore())

	voucher, err := catalog.RegisterDigital("GameVoucher", decimal.NewFromInt(25), 100)
	if err != nil {
		return err
	}

	buyer := customerdomain.NewCustomer("Mona", decimal.NewFromInt(200))
	cart := cartdomain.NewCart()
	if err := cart.Add(voucher, 3); err != nil {
		return err
	}

	receipt, err := checkoutapp.NewService(out).Checkout(buyer, cart)
	if err != nil {
		return err
	}

	log.Info("checkout complete, nothing to ship",
		slog.String("customer", buyer.Name()),
		slog.String("amount", receipt.Total.StringFixed(0)),
	)
	return nil
}

// runDeclined drives a checkout past the customer's balance. The failure
// is the expected outcome; note the stock stays decremented.
func runDeclined(out io.Writer, log *slog.Logger) error {
	catalog := catalogapp.NewService(memory.NewStore())

	tv, err := catalog.RegisterNonExpirable("TV", decimal.NewFromInt(1000), 3, 10)
	if err != nil {
		return err
	}

	buyer := customerdomain.NewCustomer("Omar", decimal.NewFromInt(500))
	cart := cartdomain.NewCart()
	if err := cart.Add(tv, 1); err != nil {
		return err
	}

	_, err = checkoutapp.NewService(out).Checkout(buyer, cart)
	if !errors.Is(err, checkoutapp.ErrInsufficientBalance) {
		return fmt.Errorf("expected insufficient balance, got: %w", err)
	}

	log.Warn("checkout declined",
		slog.String("customer", buyer.Name()),
		slog.Any("err", err),
		slog.Int("tv_stock_after", tv.Stock),
	)
	return nil
}
