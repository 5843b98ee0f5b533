// Package shopapi implements the commerce-platform admin REST client serving
// as the dashboard's order and product source. Credentials and endpoint are
// explicit per-client configuration; there is no process-wide session state.
package shopapi

import (
	"time"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/model/product"
)

// ordersEnvelope wraps the order list the way the admin API returns it.
type ordersEnvelope struct {
	Orders []orderDTO `json:"orders"`
}

type orderDTO struct {
	OrderNumber  int              `json:"order_number"`
	CreatedAt    time.Time        `json:"created_at"`
	TotalPrice   string           `json:"total_price"`
	LineItems    []lineItemDTO    `json:"line_items"`
	Fulfillments []fulfillmentDTO `json:"fulfillments"`
}

type lineItemDTO struct {
	Title        string `json:"title"`
	VariantTitle string `json:"variant_title"`
	Quantity     int    `json:"quantity"`
	ProductID    int64  `json:"product_id"`
	VariantID    int64  `json:"variant_id"`
}

type fulfillmentDTO struct {
	TrackingNumber string `json:"tracking_number"`
	TrackingURL    string `json:"tracking_url"`
}

// productEnvelope wraps a single product the way the admin API returns it.
type productEnvelope struct {
	Product productDTO `json:"product"`
}

type productDTO struct {
	ID       int64        `json:"id"`
	Variants []variantDTO `json:"variants"`
	Images   []imageDTO   `json:"images"`
}

type variantDTO struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	ImageID int64  `json:"image_id"`
}

type imageDTO struct {
	ID  int64  `json:"id"`
	Src string `json:"src"`
}

// toDomain converts an order payload to the domain snapshot.
// Fulfillment order is preserved as returned by the platform; the domain's
// last-wins tracking policy depends on it.
func (dto orderDTO) toDomain() (order.Order, error) {
	lineItems := make([]order.LineItem, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		item, err := order.NewLineItem(li.Title, li.VariantTitle, li.Quantity, li.ProductID, li.VariantID)
		if err != nil {
			return order.Order{}, err
		}
		lineItems = append(lineItems, item)
	}

	fulfillments := make([]order.Fulfillment, 0, len(dto.Fulfillments))
	for _, f := range dto.Fulfillments {
		fulfillments = append(fulfillments, order.NewFulfillment(f.TrackingNumber, f.TrackingURL))
	}

	return order.NewOrder(dto.OrderNumber, dto.CreatedAt, dto.TotalPrice, lineItems, fulfillments)
}

// toDomain converts a product payload to the domain read model.
func (dto productDTO) toDomain() (product.Product, error) {
	variants := make([]product.Variant, 0, len(dto.Variants))
	for _, v := range dto.Variants {
		variants = append(variants, product.NewVariant(v.ID, v.Title, v.ImageID))
	}

	images := make([]product.Image, 0, len(dto.Images))
	for _, img := range dto.Images {
		images = append(images, product.NewImage(img.ID, img.Src))
	}

	return product.NewProduct(dto.ID, variants, images)
}
