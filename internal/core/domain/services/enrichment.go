package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

var (
	errNoImages        = errors.New("product has no images")
	errVariantNotFound = errors.New("variant not found on product")
)

// EnrichmentPolicy controls how line-item enrichment degrades when image
// resolution fails.
type EnrichmentPolicy struct {
	// ReuseLastImageOnFailure reuses the image URL last successfully resolved
	// for an earlier line item of the same order when resolution fails. This
	// reproduces the legacy dashboard behavior, where a failed item silently
	// inherited its predecessor's image. Set to false to report no image
	// instead.
	ReuseLastImageOnFailure bool
}

// DefaultEnrichmentPolicy returns the policy matching the legacy dashboard:
// failed items reuse the previous item's image.
func DefaultEnrichmentPolicy() EnrichmentPolicy {
	return EnrichmentPolicy{ReuseLastImageOnFailure: true}
}

// EnrichedItem is the display projection of one line item.
type EnrichedItem struct {
	// Name is "{title} - {variant title}", or the bare title without a variant.
	Name string

	// Quantity is carried through unchanged from the line item.
	Quantity int

	// ImageURL is the resolved product image, empty when none could be resolved.
	ImageURL string
}

// OrderEnricher projects an order's line items into display items, resolving
// a best-effort product image per item from the product source.
//
// Image resolution follows a fixed decision table per line item:
//
//	variant title present, variant found, bound image found -> bound image
//	variant title present, variant found, no bound image    -> no image
//	variant title absent, product has images                -> first image
//	product lookup failed / variant missing / no images     -> failure fallback
//
// The failure fallback is governed by EnrichmentPolicy: either the image URL
// last resolved for an earlier item of the same order, or no image. Failures
// degrade the result only; they never abort order processing.
type OrderEnricher struct {
	products ports.ProductSource
	policy   EnrichmentPolicy
	logger   *slog.Logger
}

// NewOrderEnricher creates an OrderEnricher.
// The product source is required; a nil logger selects slog.Default.
func NewOrderEnricher(products ports.ProductSource, policy EnrichmentPolicy, logger *slog.Logger) (OrderEnricher, error) {
	if products == nil {
		return OrderEnricher{}, errs.NewValueIsRequiredError("products")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return OrderEnricher{
		products: products,
		policy:   policy,
		logger:   logger.With("component", "order_enricher"),
	}, nil
}

// EnrichItems projects every line item of the order, in order.
// Each order starts with a clean fallback state: the reuse-on-failure policy
// never carries an image across order boundaries.
func (e OrderEnricher) EnrichItems(ctx context.Context, o order.Order) []EnrichedItem {
	items := make([]EnrichedItem, 0, len(o.LineItems()))

	lastImageURL := ""
	for _, li := range o.LineItems() {
		imageURL, err := e.resolveImage(ctx, li)
		if err != nil {
			e.logger.WarnContext(ctx, "image resolution failed",
				"order_number", o.OrderNumber(), "product_id", li.ProductID(), "error", err)
			if e.policy.ReuseLastImageOnFailure {
				imageURL = lastImageURL
			} else {
				imageURL = ""
			}
		}
		if imageURL != "" {
			lastImageURL = imageURL
		}

		items = append(items, EnrichedItem{
			Name:     li.DisplayTitle(),
			Quantity: li.Quantity(),
			ImageURL: imageURL,
		})
	}

	return items
}

func (e OrderEnricher) resolveImage(ctx context.Context, li order.LineItem) (string, error) {
	p, err := e.products.GetProduct(ctx, li.ProductID())
	if err != nil {
		return "", errs.NewEnrichmentError(fmt.Sprintf("product %d", li.ProductID()), err)
	}

	if li.VariantTitle() == "" {
		img, ok := p.FirstImage()
		if !ok {
			return "", errs.NewEnrichmentError(fmt.Sprintf("product %d", li.ProductID()), errNoImages)
		}
		return img.Src(), nil
	}

	variant, ok := p.VariantByID(li.VariantID())
	if !ok {
		return "", errs.NewEnrichmentError(fmt.Sprintf("variant %d", li.VariantID()), errVariantNotFound)
	}

	if variant.ImageID() == 0 {
		// Variant exists but no image is bound to it: an explicit no-image
		// result, not a failure.
		return "", nil
	}

	img, ok := p.ImageByID(variant.ImageID())
	if !ok {
		return "", nil
	}
	return img.Src(), nil
}
