// Package errs provides standardized error types for the orderboard application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - Other specialized error types for specific validation failures
//
// It also carries the failure taxonomy of the order-status pipeline:
//   - TrackingLookupError: a single courier status lookup failed; contained by
//     the concurrent resolver, surfaces only as the "Error" sentinel status
//   - EnrichmentError: image/variant resolution failed for a line item;
//     contained by the enrichment fallback policy
//   - UpstreamUnavailableError: an external collaborator failed entirely;
//     fatal to the request, never silently degraded
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
