// Package product holds the read-only product/variant/image models returned
// by the commerce platform's product source. Enrichment uses them to resolve
// a best-effort product image per line item.
package product

import (
	"errors"

	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created
	// via the NewProduct constructor.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Image is a product image. An image may be bound to a specific variant via
// the variant's image identifier.
type Image struct {
	id  int64
	src string
}

// NewImage creates an Image value.
func NewImage(id int64, src string) Image {
	return Image{id: id, src: src}
}

// ID returns the image identifier.
func (i Image) ID() int64 {
	return i.id
}

// Src returns the image URL.
func (i Image) Src() string {
	return i.src
}

// Variant is a sellable variation of a product. ImageID is zero when the
// variant has no bound image.
type Variant struct {
	id      int64
	title   string
	imageID int64
}

// NewVariant creates a Variant value.
func NewVariant(id int64, title string, imageID int64) Variant {
	return Variant{id: id, title: title, imageID: imageID}
}

// ID returns the variant identifier.
func (v Variant) ID() int64 {
	return v.id
}

// Title returns the variant title.
func (v Variant) Title() string {
	return v.title
}

// ImageID returns the identifier of the image bound to this variant,
// zero when unbound.
func (v Variant) ImageID() int64 {
	return v.imageID
}

// Product is a read-only product snapshot: a list of variants and a list of
// images in the order the platform returned them.
type Product struct {
	id       int64
	variants []Variant
	images   []Image

	guard guard.ConstructorGuard
}

// NewProduct creates a Product snapshot. The variant and image slices are
// copied; id must be positive.
func NewProduct(id int64, variants []Variant, images []Image) (Product, error) {
	if id <= 0 {
		return Product{}, errs.NewValueIsInvalidError("productID")
	}

	return Product{
		id:       id,
		variants: append([]Variant(nil), variants...),
		images:   append([]Image(nil), images...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Product was created through NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identifier.
func (p Product) ID() int64 {
	return p.id
}

// Variants returns the variants in platform order. Treat as read-only.
func (p Product) Variants() []Variant {
	return p.variants
}

// Images returns the images in platform order. Treat as read-only.
func (p Product) Images() []Image {
	return p.images
}

// VariantByID finds a variant by its identifier.
func (p Product) VariantByID(id int64) (Variant, bool) {
	for _, v := range p.variants {
		if v.ID() == id {
			return v, true
		}
	}
	return Variant{}, false
}

// ImageByID finds an image by its identifier.
func (p Product) ImageByID(id int64) (Image, bool) {
	for _, img := range p.images {
		if img.ID() == id {
			return img, true
		}
	}
	return Image{}, false
}

// FirstImage returns the first image the platform returned, if any.
func (p Product) FirstImage() (Image, bool) {
	if len(p.images) == 0 {
		return Image{}, false
	}
	return p.images[0], true
}
