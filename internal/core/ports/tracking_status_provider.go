package ports

import "context"

// TrackingStatusProvider resolves the current delivery status of a single
// tracking number against the courier.
type TrackingStatusProvider interface {
	// LookupStatus performs one lookup for the given tracking number and
	// returns the most recent status description the courier reports.
	// It returns order.StatusUnknown when the courier has no history yet and
	// an errs.TrackingLookupError when the lookup itself fails. It never
	// retries; retry and isolation policy belong to the caller.
	LookupStatus(ctx context.Context, trackingNumber string) (string, error)
}
