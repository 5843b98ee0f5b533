package ports

import (
	"context"
	"time"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/model/product"
)

// OrderSource retrieves order snapshots from the commerce platform.
// It is the collaborator whose total failure is fatal to a dashboard request
// (errs.UpstreamUnavailableError), unlike per-item tracking lookups.
type OrderSource interface {
	// GetOrders returns orders whose creation time falls inside
	// [createdAtMin, createdAtMax], ordered by creation time descending.
	// The window bounds are opaque inputs supplied by the caller.
	GetOrders(ctx context.Context, createdAtMin, createdAtMax time.Time) ([]order.Order, error)
}

// ProductSource retrieves product snapshots (variants and images) from the
// commerce platform. Enrichment degrades gracefully when a product lookup
// fails; it never aborts order processing.
type ProductSource interface {
	// GetProduct returns the product with the given identifier, including its
	// variant list and image list in platform order.
	GetProduct(ctx context.Context, productID int64) (product.Product, error)
}
