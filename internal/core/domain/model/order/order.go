package order

import (
	"errors"
	"time"

	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// NoTracking is the display value used when an order carries no tracking number.
const NoTracking = "N/A"

// Order is an immutable snapshot of a commerce-platform order as returned by
// the order source. The pipeline only reads and projects it; it is never
// mutated after construction.
//
// Order maintains these invariants:
//   - Order number is positive
//   - Creation timestamp is set (zoned, supplied by the platform)
//   - Total price is present (platform-formatted decimal string)
//   - Can only be created through NewOrder
type Order struct {
	orderNumber  int
	createdAt    time.Time
	totalPrice   string
	lineItems    []LineItem
	fulfillments []Fulfillment

	guard guard.ConstructorGuard
}

// NewOrder creates an Order snapshot with validation.
//
// Parameters:
//   - orderNumber: platform-assigned order number (must be positive)
//   - createdAt: order creation timestamp (must be set)
//   - totalPrice: platform-formatted price string (must be non-empty)
//   - lineItems: ordered list of line items (may be empty)
//   - fulfillments: shipment records in the order returned by the platform (may be empty)
//
// The line-item and fulfillment slices are copied so later mutation of the
// caller's slices cannot change the snapshot.
func NewOrder(
	orderNumber int,
	createdAt time.Time,
	totalPrice string,
	lineItems []LineItem,
	fulfillments []Fulfillment,
) (Order, error) {
	o := Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setOrderNumber(orderNumber),
		o.setCreatedAt(createdAt),
		o.setTotalPrice(totalPrice),
	); err != nil {
		return Order{}, err
	}

	o.lineItems = append([]LineItem(nil), lineItems...)
	o.fulfillments = append([]Fulfillment(nil), fulfillments...)
	return o, nil
}

// Validate ensures the Order was created through NewOrder.
func (o Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// OrderNumber returns the platform-assigned order number.
func (o Order) OrderNumber() int {
	return o.orderNumber
}

// CreatedAt returns the order creation timestamp.
func (o Order) CreatedAt() time.Time {
	return o.createdAt
}

// TotalPrice returns the platform-formatted total price string.
func (o Order) TotalPrice() string {
	return o.totalPrice
}

// LineItems returns the ordered line items. Callers must treat the slice as read-only.
func (o Order) LineItems() []LineItem {
	return o.lineItems
}

// Fulfillments returns the shipment records in platform iteration order.
// Callers must treat the slice as read-only.
func (o Order) Fulfillments() []Fulfillment {
	return o.fulfillments
}

// TrackingInfo carries the tracking identifiers an order is displayed with.
// Number is NoTracking when the order has no usable tracking number.
type TrackingInfo struct {
	Number string
	URL    string
}

// HasTracking reports whether a real tracking number is present.
func (t TrackingInfo) HasTracking() bool {
	return t.Number != NoTracking && t.Number != ""
}

// Tracking resolves the tracking number and URL an order is displayed with.
//
// When an order has several fulfillments the last one in platform iteration
// order wins. This is a deliberate, documented tie-break (take the last
// element of the ordered sequence), not a loop side effect. A fulfillment
// without a tracking number yields NoTracking while still carrying its URL.
func (o Order) Tracking() TrackingInfo {
	if len(o.fulfillments) == 0 {
		return TrackingInfo{Number: NoTracking}
	}

	last := o.fulfillments[len(o.fulfillments)-1]
	info := TrackingInfo{Number: last.TrackingNumber(), URL: last.TrackingURL()}
	if info.Number == "" {
		info.Number = NoTracking
	}
	return info
}

func (o *Order) setOrderNumber(orderNumber int) error {
	if orderNumber <= 0 {
		return errs.NewValueIsInvalidError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setTotalPrice(totalPrice string) error {
	if totalPrice == "" {
		return errs.NewValueIsRequiredError("totalPrice")
	}
	o.totalPrice = totalPrice
	return nil
}
