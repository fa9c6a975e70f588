package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// Order is the aggregate root of the fulfillment workflow. It exclusively owns
// its items and tracks the lifecycle pending -> processing -> picked -> packed -> shipped.
//
// Order follows these invariants:
//   - id, customer, orderDate and priority never change after creation
//   - items is non-empty and holds each productId at most once
//   - totalAmount always equals the sum of price x quantity over items
//   - status equals DeriveStatus(items) unless the order is Shipped
//   - item statuses only move one step forward (pending -> picked -> verified)
//
// Operations never mutate the receiver. Each one returns a new snapshot carrying
// the domain events it raised, so a failed operation leaves the previous
// snapshot untouched and a successful one can be committed in a single step.
type Order struct {
	// id is the business identifier, e.g. "ORD10001"
	id string

	customer  Customer
	orderDate time.Time
	priority  Priority

	// items is ordered as entered at intake
	items []Item

	totalAmount kernel.Money

	// status is derived from items except for the explicit Shipped transition
	status Status

	// events raised by the operation that produced this snapshot
	events []kernel.DomainEvent

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder registers a new order at intake. All items must be pending and the
// order starts Pending. An OrderCreated event is raised.
//
// Example:
//
//	customer, _ := order.NewCustomer("John Smith", "john@example.com", "123 Main St")
//	item, _ := order.NewItem("P1001", 2, kernel.MustMoney("49.99"))
//	o, err := order.NewOrder("ORD10001", customer, time.Now(), order.Standard, []order.Item{item})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id string, customer Customer, orderDate time.Time, priority Priority, items []Item) (*Order, error) {
	for _, item := range items {
		if item.Status() != ItemPending {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("item %s is %s, new orders only hold pending items", item.ProductID(), item.Status()),
			)
		}
	}

	o, err := RestoreOrder(id, customer, orderDate, priority, items, Pending)
	if err != nil {
		return nil, err
	}

	o.raise(CreatedEvent{
		BaseEvent:   kernel.NewBaseEvent(EventOrderCreated, o.id),
		Priority:    o.priority,
		ItemCount:   len(o.items),
		TotalAmount: o.totalAmount,
	})
	return o, nil
}

// RestoreOrder rebuilds an order from storage or fixtures. The stored status
// must agree with the items: either DeriveStatus(items), or Shipped with every
// item verified.
func RestoreOrder(
	id string,
	customer Customer,
	orderDate time.Time,
	priority Priority,
	items []Item,
	status Status,
) (*Order, error) {
	o := &Order{
		orderDate:     orderDate,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setPriority(priority),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.totalAmount = sumItems(o.items)

	if err := o.CheckInvariants(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// CheckInvariants verifies the aggregate-wide rules. A failure means a bug, not
// bad input; repositories refuse to store such a snapshot.
func (o *Order) CheckInvariants() error {
	if err := o.Validate(); err != nil {
		return err
	}

	if total := sumItems(o.items); !total.IsEqual(o.totalAmount) {
		return fmt.Errorf("%w: total %s != sum of items %s", ErrInvariantViolated, o.totalAmount, total)
	}

	if o.status == Shipped {
		if DeriveStatus(o.items) != Packed {
			return fmt.Errorf("%w: shipped order has unverified items", ErrInvariantViolated)
		}
		return nil
	}

	if derived := DeriveStatus(o.items); derived != o.status {
		return fmt.Errorf("%w: status %s but items derive %s", ErrInvariantViolated, o.status, derived)
	}
	return nil
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's business identifier.
func (o *Order) ID() string {
	return o.id
}

// Customer returns the buyer snapshot.
func (o *Order) Customer() Customer {
	return o.customer
}

// OrderDate returns when the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Priority returns the shipping service level.
func (o *Order) Priority() Priority {
	return o.priority
}

// Items returns a copy of the order lines in intake order.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// Item looks up the line for productID.
func (o *Order) Item(productID string) (Item, bool) {
	idx := o.indexOf(productID)
	if idx < 0 {
		return Item{}, false
	}
	return o.items[idx], true
}

// TotalAmount returns the sum of price x quantity over all items.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current order status.
func (o *Order) Status() Status {
	return o.status
}

// DomainEvents returns the events raised by the operation that produced this snapshot.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	return slices.Clone(o.events)
}

// SetItemStatus moves the line for productID to newStatus and returns the new
// snapshot. It only touches the item: the order status is left as it was, so
// callers are expected to re-derive it (every engine operation does).
//
// Errors:
//   - ErrItemNotFound when no line has productID
//   - ErrInvalidTransition when newStatus is not exactly one step forward
func (o *Order) SetItemStatus(productID string, newStatus ItemStatus) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	idx := o.indexOf(productID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s in order %s", ErrItemNotFound, productID, o.id)
	}

	current := o.items[idx].Status()
	if err := current.CanTransitionTo(newStatus); err != nil {
		return nil, fmt.Errorf("product %s: %w", productID, err)
	}

	next := o.snapshot()
	next.items[idx] = next.items[idx].withStatus(newStatus)
	next.raise(ItemStatusChangedEvent{
		BaseEvent: kernel.NewBaseEvent(EventItemStatusChanged, o.id),
		ProductID: productID,
		From:      current,
		To:        newStatus,
	})
	return next, nil
}

// PickItem records that quantityPicked units of productID were taken from the
// shelf. quantityPicked must satisfy 0 < quantityPicked <= item quantity; a
// partial quantity still moves the line to picked.
//
// Errors: ErrItemNotFound, ErrInvalidQuantity, ErrInvalidTransition (line not
// pending, or order already shipped).
func (o *Order) PickItem(productID string, quantityPicked int) (*Order, error) {
	if err := o.ensureOpen(); err != nil {
		return nil, err
	}

	item, ok := o.Item(productID)
	if !ok {
		return nil, fmt.Errorf("%w: %s in order %s", ErrItemNotFound, productID, o.id)
	}

	if quantityPicked <= 0 || quantityPicked > item.Quantity() {
		return nil, fmt.Errorf("%w: %d is outside 1..%d for product %s",
			ErrInvalidQuantity, quantityPicked, item.Quantity(), productID)
	}

	next, err := o.SetItemStatus(productID, ItemPicked)
	if err != nil {
		return nil, err
	}
	next.rederive()
	return next, nil
}

// VerifyItem confirms a picked line at the packing station.
//
// Errors: ErrItemNotFound, ErrItemNotPicked (line still pending),
// ErrInvalidTransition (line already verified, or order shipped).
func (o *Order) VerifyItem(productID string) (*Order, error) {
	if err := o.ensureOpen(); err != nil {
		return nil, err
	}

	item, ok := o.Item(productID)
	if !ok {
		return nil, fmt.Errorf("%w: %s in order %s", ErrItemNotFound, productID, o.id)
	}

	if item.Status() == ItemPending {
		return nil, fmt.Errorf("%w: %s in order %s", ErrItemNotPicked, productID, o.id)
	}

	next, err := o.SetItemStatus(productID, ItemVerified)
	if err != nil {
		return nil, err
	}
	next.rederive()
	return next, nil
}

// CompletePicking closes the picking session. Every line must be at least
// picked; verified lines stay verified. The status is re-derived, so an order
// whose lines are all picked ends up Picked, while a mix of picked and
// verified lines stays Processing. Calling it again changes nothing.
func (o *Order) CompletePicking() (*Order, error) {
	if err := o.ensureOpen(); err != nil {
		return nil, err
	}

	if pending := o.linesBelow(ItemPicked); len(pending) > 0 {
		return nil, fmt.Errorf("%w: order %s has unpicked items %s",
			ErrIncompleteItems, o.id, strings.Join(pending, ", "))
	}

	next := o.snapshot()
	next.rederive()
	return next, nil
}

// CompletePacking closes the packing session. Every line must be verified;
// the order ends up Packed. Calling it again changes nothing.
func (o *Order) CompletePacking() (*Order, error) {
	if err := o.ensureOpen(); err != nil {
		return nil, err
	}

	if unverified := o.linesBelow(ItemVerified); len(unverified) > 0 {
		return nil, fmt.Errorf("%w: order %s has unverified items %s",
			ErrIncompleteItems, o.id, strings.Join(unverified, ", "))
	}

	next := o.snapshot()
	next.rederive()
	return next, nil
}

// Ship hands a packed order to the carrier. This is the only status change
// that is not driven by items.
func (o *Order) Ship() (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	shipped, err := o.status.Ship()
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", o.id, err)
	}

	next := o.snapshot()
	next.changeStatus(shipped)
	return next, nil
}

// snapshot copies the order with its own items slice and no events.
func (o *Order) snapshot() *Order {
	next := *o
	next.items = slices.Clone(o.items)
	next.events = nil
	return &next
}

func (o *Order) ensureOpen() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: order %s is %s", ErrInvalidTransition, o.id, o.status)
	}
	return nil
}

func (o *Order) rederive() {
	o.changeStatus(DeriveStatus(o.items))
}

func (o *Order) changeStatus(status Status) {
	if status == o.status {
		return
	}
	o.raise(StatusChangedEvent{
		BaseEvent: kernel.NewBaseEvent(EventOrderStatusChanged, o.id),
		From:      o.status,
		To:        status,
	})
	o.status = status
}

func (o *Order) raise(event kernel.DomainEvent) {
	o.events = append(o.events, event)
}

func (o *Order) indexOf(productID string) int {
	return slices.IndexFunc(o.items, func(item Item) bool {
		return item.ProductID() == productID
	})
}

func (o *Order) linesBelow(status ItemStatus) []string {
	var below []string
	for _, item := range o.items {
		if !item.Status().IsAtLeast(status) {
			below = append(below, item.ProductID())
		}
	}
	return below
}

func (o *Order) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.ProductID()]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateItem, item.ProductID())
		}
		seen[item.ProductID()] = struct{}{}
	}

	o.items = slices.Clone(items)
	return nil
}

func sumItems(items []Item) kernel.Money {
	total := kernel.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
