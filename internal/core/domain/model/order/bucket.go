package order

import (
	"fmt"

	"orderboard/internal/pkg/errs"
)

// Raw courier status strings with classification or display significance.
// StatusPending doubles as the display status of orders without tracking.
const (
	StatusPending          = "Pending"
	StatusBookedAndPending = "Booked & Pending"
	StatusDelivered        = "DELIVERED"
	StatusReturnSubmitted  = "RETURN SUBMITTED"

	// StatusUnknown is reported when the courier returned no history for a
	// tracking number, or when a tracking number is missing from a resolved
	// status map.
	StatusUnknown = "Unknown"

	// StatusError is the sentinel recorded by the concurrent resolver for a
	// tracking number whose lookup failed. It classifies as Undelivered.
	StatusError = "Error"
)

// Courier display labels.
const (
	// CourierCCS labels every order that carries a tracking number.
	CourierCCS = "CCS"

	// CourierNone labels orders without a tracking number.
	CourierNone = "N/A"
)

// Bucket is the business classification of an order's shipment state.
// Every order in a batch falls into exactly one bucket; the four buckets
// partition the batch with no double counting or omission.
type Bucket int

const (
	// Unclassified represents an invalid or undefined bucket.
	// This value (0) helps catch uninitialized Bucket values.
	Unclassified Bucket = iota

	// Pending covers orders without a tracking number and orders whose courier
	// status is "Booked & Pending" or "Pending".
	Pending

	// Delivered covers orders whose courier status is "DELIVERED".
	Delivered

	// Undelivered covers every other courier status, including "Unknown",
	// "Error" and in-transit states.
	Undelivered

	// Returned covers orders whose courier status is "RETURN SUBMITTED".
	// Returned orders are excluded from the delivery-ratio denominator.
	Returned
)

// getBucketStrings returns a map of Bucket values to their string representations.
func getBucketStrings() map[Bucket]string {
	return map[Bucket]string{
		Unclassified: "Unclassified",
		Pending:      "Pending",
		Delivered:    "Delivered",
		Undelivered:  "Undelivered",
		Returned:     "Returned",
	}
}

// getValidBucketStrings returns a map of only valid Bucket values.
func getValidBucketStrings() map[Bucket]string {
	//nolint:exhaustive // Unclassified is intentionally excluded as it's invalid
	return map[Bucket]string{
		Pending:     "Pending",
		Delivered:   "Delivered",
		Undelivered: "Undelivered",
		Returned:    "Returned",
	}
}

// Validate checks if the Bucket value is one of the four business buckets.
func (b Bucket) Validate() error {
	if _, ok := getValidBucketStrings()[b]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("bucket is invalid",
			fmt.Errorf("%d is not a valid bucket", b))
	}
	return nil
}

// String returns the human-readable name of the bucket.
// It implements fmt.Stringer and is safe on any Bucket value.
func (b Bucket) String() string {
	if str, ok := getBucketStrings()[b]; ok {
		return str
	}
	return "Unclassified"
}

// ClassifyStatus maps a raw courier status string to its business bucket:
//
//	"Booked & Pending", "Pending"  -> Pending
//	"DELIVERED"                    -> Delivered
//	"RETURN SUBMITTED"             -> Returned
//	anything else                  -> Undelivered
//
// "anything else" includes "Unknown", the resolver's "Error" sentinel and any
// in-transit status the courier reports.
func ClassifyStatus(status string) Bucket {
	switch status {
	case StatusBookedAndPending, StatusPending:
		return Pending
	case StatusDelivered:
		return Delivered
	case StatusReturnSubmitted:
		return Returned
	default:
		return Undelivered
	}
}
