package services

import (
	"math"
	"time"

	"orderboard/internal/core/domain/model/order"
)

// Rollup accumulates per-bucket counts over a batch of classified orders and
// derives the aggregate figures shown on the dashboard.
//
// Invariant: every observed order lands in exactly one bucket, so after a
// full batch pending+delivered+undelivered+returned equals the batch size.
type Rollup struct {
	pending           int
	delivered         int
	undelivered       int
	returned          int
	oldestPendingDays int
}

// NewRollup creates an empty Rollup.
func NewRollup() *Rollup {
	return &Rollup{}
}

// Observe records one classified order.
//
// pendingSinceDays is tracked as a running maximum over every observed order
// regardless of its bucket, not only pending ones. That bucket-agnostic
// definition reproduces the legacy dashboard; scoping the maximum to pending
// orders is a deliberate policy point left for review, and would be a
// one-line change here.
func (r *Rollup) Observe(bucket order.Bucket, pendingSinceDays int) error {
	if err := bucket.Validate(); err != nil {
		return err
	}

	switch bucket {
	case order.Pending:
		r.pending++
	case order.Delivered:
		r.delivered++
	case order.Undelivered:
		r.undelivered++
	case order.Returned:
		r.returned++
	case order.Unclassified:
		// Unreachable: Validate rejects Unclassified.
	}

	if pendingSinceDays > r.oldestPendingDays {
		r.oldestPendingDays = pendingSinceDays
	}
	return nil
}

// PendingCount returns the number of orders in the Pending bucket.
func (r *Rollup) PendingCount() int {
	return r.pending
}

// DeliveredCount returns the number of orders in the Delivered bucket.
func (r *Rollup) DeliveredCount() int {
	return r.delivered
}

// UndeliveredCount returns the number of orders in the Undelivered bucket.
func (r *Rollup) UndeliveredCount() int {
	return r.undelivered
}

// ReturnedCount returns the number of orders in the Returned bucket.
func (r *Rollup) ReturnedCount() int {
	return r.returned
}

// OldestPendingDays returns the maximum pending age observed across the batch.
func (r *Rollup) OldestPendingDays() int {
	return r.oldestPendingDays
}

// DeliveryRatio returns floor(delivered / total * 100) as an integer
// percentage, where total = pending + delivered + undelivered. Returned
// orders are excluded from the denominator. A batch with total zero yields 0
// regardless of the returned count.
func (r *Rollup) DeliveryRatio() int {
	total := r.pending + r.delivered + r.undelivered
	if total == 0 {
		return 0
	}
	return r.delivered * 100 / total
}

// PendingSinceDays computes how long an order has been open: the whole days
// elapsed between its creation time and now, in UTC. A creation time in the
// future (clock skew on the platform side) clamps to zero instead of going
// negative.
func PendingSinceDays(createdAt, now time.Time) int {
	days := int(math.Floor(now.Sub(createdAt).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
