// Package services provides the domain services of the order-status pipeline:
// the concurrent tracking-status resolver, per-order line-item enrichment and
// the rollup aggregator. They orchestrate work across the order and product
// models without owning any state of their own.
package services
