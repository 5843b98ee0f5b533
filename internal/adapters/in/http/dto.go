package http

import (
	"time"

	"orderboard/internal/core/application/usecases/queries"
)

// errorResponse is the JSON error payload for every failed request.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Username string `json:"username"`
}

type dashboardItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	ImageURL string `json:"image_url,omitempty"`
}

type dashboardOrderResponse struct {
	OrderNumber      int                     `json:"order_number"`
	TrackingNumber   string                  `json:"tracking_number"`
	TrackingURL      string                  `json:"tracking_url,omitempty"`
	OrderDate        time.Time               `json:"order_date"`
	Price            string                  `json:"price"`
	Items            []dashboardItemResponse `json:"items"`
	Status           string                  `json:"status"`
	Bucket           string                  `json:"bucket"`
	PendingSinceDays int                     `json:"pending_since_days"`
	OrderVia         string                  `json:"order_via"`
	ShippedVia       string                  `json:"shipped_via"`
}

type dashboardResponse struct {
	Orders []dashboardOrderResponse `json:"orders"`

	PendingCount      int `json:"pending_count"`
	DeliveredCount    int `json:"delivered_count"`
	UndeliveredCount  int `json:"undelivered_count"`
	ReturnedCount     int `json:"returned_count"`
	OldestPendingDays int `json:"oldest_pending_days"`
	DeliveryRatio     int `json:"delivery_ratio"`

	// ComputedAt is when the served snapshot was built. For a live computation
	// it equals the request time.
	ComputedAt time.Time `json:"computed_at"`
}

// toDashboardResponse projects a query response into the JSON payload.
func toDashboardResponse(result queries.GetDashboardQueryResponse, computedAt time.Time) dashboardResponse {
	orders := make([]dashboardOrderResponse, 0, len(result.Orders))
	for _, row := range result.Orders {
		items := make([]dashboardItemResponse, 0, len(row.Items))
		for _, item := range row.Items {
			items = append(items, dashboardItemResponse{
				Name:     item.Name,
				Quantity: item.Quantity,
				ImageURL: item.ImageURL,
			})
		}

		orders = append(orders, dashboardOrderResponse{
			OrderNumber:      row.OrderNumber,
			TrackingNumber:   row.TrackingNumber,
			TrackingURL:      row.TrackingURL,
			OrderDate:        row.OrderDate,
			Price:            row.Price,
			Items:            items,
			Status:           row.Status,
			Bucket:           row.Bucket,
			PendingSinceDays: row.PendingSinceDays,
			OrderVia:         row.OrderVia,
			ShippedVia:       row.ShippedVia,
		})
	}

	return dashboardResponse{
		Orders:            orders,
		PendingCount:      result.PendingCount,
		DeliveredCount:    result.DeliveredCount,
		UndeliveredCount:  result.UndeliveredCount,
		ReturnedCount:     result.ReturnedCount,
		OldestPendingDays: result.OldestPendingDays,
		DeliveryRatio:     result.DeliveryRatio,
		ComputedAt:        computedAt,
	}
}
