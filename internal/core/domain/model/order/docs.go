// Package order holds the immutable order snapshot supplied by the commerce
// platform (orders, line items, fulfillments) together with the shipment-state
// classification: raw courier status strings, the four business buckets and
// the ClassifyStatus mapping between them.
//
// The pipeline never mutates a snapshot; everything in this package is a
// read-only projection of upstream data.
package order
