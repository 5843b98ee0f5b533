package order

// Fulfillment is a shipment record attached to an order. Both fields are
// optional: the platform may create a fulfillment before the courier assigns
// a tracking number.
//
// Fulfillment is a plain value object; its zero value legitimately means
// "no tracking information yet", so no constructor guard is needed.
type Fulfillment struct {
	trackingNumber string
	trackingURL    string
}

// NewFulfillment creates a Fulfillment. Empty strings stand for absent values.
func NewFulfillment(trackingNumber, trackingURL string) Fulfillment {
	return Fulfillment{trackingNumber: trackingNumber, trackingURL: trackingURL}
}

// TrackingNumber returns the courier-assigned tracking number, empty when absent.
func (f Fulfillment) TrackingNumber() string {
	return f.trackingNumber
}

// TrackingURL returns the courier tracking page URL, empty when absent.
func (f Fulfillment) TrackingURL() string {
	return f.trackingURL
}
