package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/services"
)

// Summary counts what Apply changed.
type Summary struct {
	Products       int
	Orders         int
	SkippedEntries int
}

// Loader replays a seed File through the command handlers.
type Loader struct {
	addProduct  commands.AddProductCommandHandler
	createOrder commands.CreateOrderCommandHandler
	pickItem    commands.PickItemCommandHandler
	verifyItem  commands.VerifyItemCommandHandler
	shipOrder   commands.ShipOrderCommandHandler
	logger      *slog.Logger
}

func NewLoader(
	addProduct commands.AddProductCommandHandler,
	createOrder commands.CreateOrderCommandHandler,
	pickItem commands.PickItemCommandHandler,
	verifyItem commands.VerifyItemCommandHandler,
	shipOrder commands.ShipOrderCommandHandler,
	logger *slog.Logger,
) *Loader {
	return &Loader{
		addProduct:  addProduct,
		createOrder: createOrder,
		pickItem:    pickItem,
		verifyItem:  verifyItem,
		shipOrder:   shipOrder,
		logger:      logger.With("component", "seed_loader"),
	}
}

// Apply adds the products first, then the orders. Entries that already exist
// are skipped, so applying the same file twice is harmless. Progress recorded
// on item statuses is replayed only for orders created by this call.
func (l *Loader) Apply(ctx context.Context, f *File) (Summary, error) {
	var summary Summary

	for _, p := range f.Products {
		added, err := l.applyProduct(ctx, p)
		if err != nil {
			return summary, err
		}
		if added {
			summary.Products++
		} else {
			summary.SkippedEntries++
		}
	}

	for _, o := range f.Orders {
		created, err := l.applyOrder(ctx, o)
		if err != nil {
			return summary, err
		}
		if created {
			summary.Orders++
		} else {
			summary.SkippedEntries++
		}
	}

	l.logger.InfoContext(ctx, "Seed data applied",
		"products", summary.Products,
		"orders", summary.Orders,
		"skipped", summary.SkippedEntries)
	return summary, nil
}

func (l *Loader) applyProduct(ctx context.Context, p Product) (bool, error) {
	cmd, err := commands.NewAddProductCommand(
		p.ID, p.Barcode, p.Name, p.Category, p.Location, p.StockQuantity, p.UnitPrice)
	if err != nil {
		return false, fmt.Errorf("seed product %s: %w", p.ID, err)
	}

	if _, err := l.addProduct.Handle(ctx, cmd); err != nil {
		if errors.Is(err, product.ErrDuplicateProduct) {
			l.logger.DebugContext(ctx, "Product already present", "product_id", p.ID)
			return false, nil
		}
		return false, fmt.Errorf("seed product %s: %w", p.ID, err)
	}
	return true, nil
}

func (l *Loader) applyOrder(ctx context.Context, o Order) (bool, error) {
	lines := make([]services.Line, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, services.Line{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(o.ID, o.Customer.Name, o.Customer.Email, o.Customer.Address,
		o.Priority, o.OrderDate, lines)
	if err != nil {
		return false, fmt.Errorf("seed order %s: %w", o.ID, err)
	}

	if _, err := l.createOrder.Handle(ctx, cmd); err != nil {
		if errors.Is(err, order.ErrOrderExists) {
			l.logger.DebugContext(ctx, "Order already present", "order_id", o.ID)
			return false, nil
		}
		return false, fmt.Errorf("seed order %s: %w", o.ID, err)
	}

	if err := l.replayProgress(ctx, o); err != nil {
		return true, fmt.Errorf("seed order %s: %w", o.ID, err)
	}
	return true, nil
}

func (l *Loader) replayProgress(ctx context.Context, o Order) error {
	for _, item := range o.Items {
		status := order.ItemPending
		if item.Status != "" {
			parsed, err := order.ParseItemStatus(item.Status)
			if err != nil {
				return fmt.Errorf("item %s: %w", item.ProductID, err)
			}
			status = parsed
		}

		if status.IsAtLeast(order.ItemPicked) {
			pick, err := commands.NewPickItemCommand(o.ID, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if _, err := l.pickItem.Handle(ctx, pick); err != nil {
				return err
			}
		}

		if status.IsAtLeast(order.ItemVerified) {
			verify, err := commands.NewVerifyItemCommand(o.ID, item.ProductID)
			if err != nil {
				return err
			}
			if _, err := l.verifyItem.Handle(ctx, verify); err != nil {
				return err
			}
		}
	}

	if !o.Shipped {
		return nil
	}
	ship, err := commands.NewShipOrderCommand(o.ID)
	if err != nil {
		return err
	}
	_, err = l.shipOrder.Handle(ctx, ship)
	return err
}
