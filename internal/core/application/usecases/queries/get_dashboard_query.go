// Package queries contains the read side of the application layer: query
// objects validated at construction time and handlers that assemble responses
// for the inbound adapters.
package queries

import (
	"errors"
	"time"

	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var (
	ErrGetDashboardQueryIsNotConstructed = errors.New(
		"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
	)
)

// OrderViaShopify labels the order source on every dashboard row. The
// dashboard aggregates a single commerce platform, so the label is fixed.
const OrderViaShopify = "Shopify"

// GetDashboardQuery requests the order-status dashboard for one creation-time
// window. The window is half-open bookkeeping on the platform side; both
// bounds are passed through to the order source verbatim.
//
// Example:
//
//	now := time.Now()
//	query, err := NewGetDashboardQuery(now.Add(-48*time.Hour), now)
//	if err != nil {
//	    return err
//	}
//
//	response, err := handler.Handle(ctx, query)
type GetDashboardQuery struct {
	createdAtMin time.Time
	createdAtMax time.Time

	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a dashboard query for orders created inside
// [createdAtMin, createdAtMax]. Both bounds are required and min must not be
// after max.
func NewGetDashboardQuery(createdAtMin, createdAtMax time.Time) (GetDashboardQuery, error) {
	if createdAtMin.IsZero() {
		return GetDashboardQuery{}, errs.NewValueIsRequiredError("createdAtMin")
	}
	if createdAtMax.IsZero() {
		return GetDashboardQuery{}, errs.NewValueIsRequiredError("createdAtMax")
	}
	if createdAtMin.After(createdAtMax) {
		return GetDashboardQuery{}, errs.NewValueIsInvalidError("createdAtMin is after createdAtMax")
	}

	return GetDashboardQuery{
		createdAtMin: createdAtMin,
		createdAtMax: createdAtMax,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardQueryIsNotConstructed if validation fails.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// CreatedAtMin returns the lower bound of the creation-time window.
func (q GetDashboardQuery) CreatedAtMin() time.Time {
	return q.createdAtMin
}

// CreatedAtMax returns the upper bound of the creation-time window.
func (q GetDashboardQuery) CreatedAtMax() time.Time {
	return q.createdAtMax
}

// EnrichedOrderResponse is one dashboard row: an order joined with its
// resolved courier status and display-ready line items.
type EnrichedOrderResponse struct {
	OrderNumber int

	// TrackingNumber is "N/A" for orders without a shipment.
	TrackingNumber string
	TrackingURL    string

	OrderDate time.Time
	Price     string

	Items []EnrichedItemResponse

	// Status is the raw courier status string, or "Pending" for orders
	// without a tracking number.
	Status string

	// Bucket is the business classification derived from Status.
	Bucket string

	// PendingSinceDays is the whole days elapsed since the order was created.
	PendingSinceDays int

	// OrderVia is always OrderViaShopify.
	OrderVia string

	// ShippedVia is "CCS" when a tracking number exists, "N/A" otherwise.
	ShippedVia string
}

// EnrichedItemResponse is one display line item of a dashboard row.
type EnrichedItemResponse struct {
	Name     string
	Quantity int

	// ImageURL is empty when no product image could be resolved.
	ImageURL string
}

// GetDashboardQueryResponse carries the dashboard rows plus the batch rollup.
type GetDashboardQueryResponse struct {
	Orders []EnrichedOrderResponse

	PendingCount     int
	DeliveredCount   int
	UndeliveredCount int
	ReturnedCount    int

	// OldestPendingDays is the maximum PendingSinceDays over the whole batch.
	OldestPendingDays int

	// DeliveryRatio is floor(delivered / (pending+delivered+undelivered) * 100),
	// zero for an empty denominator.
	DeliveryRatio int

	// FetchDuration, ResolveDuration and TotalDuration expose the pipeline
	// timings the handler also logs, so callers can surface them.
	FetchDuration   time.Duration
	ResolveDuration time.Duration
	TotalDuration   time.Duration
}
