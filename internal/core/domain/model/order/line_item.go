package order

import (
	"errors"

	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created
	// via the NewLineItem constructor.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is one purchased position within an order snapshot. It references
// the product and variant it was sold as so enrichment can resolve a display
// title and product image.
type LineItem struct {
	title        string
	variantTitle string
	quantity     int
	productID    int64
	variantID    int64

	guard guard.ConstructorGuard
}

// NewLineItem creates a LineItem with validation.
// Title is required and quantity must be positive; variantTitle is optional
// (empty when the product has no variants), variantID may be zero in that case.
func NewLineItem(title, variantTitle string, quantity int, productID, variantID int64) (LineItem, error) {
	li := LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		li.setTitle(title),
		li.setQuantity(quantity),
		li.setProductID(productID),
	); err != nil {
		return LineItem{}, err
	}

	li.variantTitle = variantTitle
	li.variantID = variantID
	return li, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// Title returns the product title of the line item.
func (li LineItem) Title() string {
	return li.title
}

// VariantTitle returns the variant title, empty when the item has no variant.
func (li LineItem) VariantTitle() string {
	return li.variantTitle
}

// Quantity returns the purchased quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// ProductID returns the identifier of the product this item was sold from.
func (li LineItem) ProductID() int64 {
	return li.productID
}

// VariantID returns the identifier of the sold variant, zero when variant-less.
func (li LineItem) VariantID() int64 {
	return li.variantID
}

// DisplayTitle builds the customer-facing item name:
// "{title} - {variant title}" when a variant title exists, the bare title otherwise.
func (li LineItem) DisplayTitle() string {
	if li.variantTitle == "" {
		return li.title
	}
	return li.title + " - " + li.variantTitle
}

func (li *LineItem) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	li.title = title
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidError("productID")
	}
	li.productID = productID
	return nil
}
