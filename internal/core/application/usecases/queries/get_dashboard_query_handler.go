package queries

import (
	"context"
	"log/slog"
	"time"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/services"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

// GetDashboardQueryHandler runs the dashboard pipeline for one query:
//
//  1. fetch the order batch for the query's creation-time window
//  2. resolve courier statuses for every tracking number concurrently
//  3. classify each order into its bucket and enrich its line items
//  4. roll the batch up into counts, oldest pending age and delivery ratio
//
// An order source failure aborts the request; courier and product failures
// degrade single rows only.
//
// Example:
//
//	handler, err := NewGetDashboardQueryHandler(shop, resolver, enricher, logger)
//	if err != nil {
//	    return err
//	}
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build dashboard: %w", err)
//	}
//
//	fmt.Printf("%d orders, ratio %d%%\n", len(response.Orders), response.DeliveryRatio)
type GetDashboardQueryHandler struct {
	orders   ports.OrderSource
	resolver services.StatusResolver
	enricher services.OrderEnricher
	logger   *slog.Logger
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
//
// Parameters:
//   - orders: the platform order source (required)
//   - resolver: the concurrent courier status resolver
//   - enricher: the line-item enricher
//   - logger: receives the pipeline timing summary; nil selects slog.Default
func NewGetDashboardQueryHandler(
	orders ports.OrderSource,
	resolver services.StatusResolver,
	enricher services.OrderEnricher,
	logger *slog.Logger,
) (GetDashboardQueryHandler, error) {
	if orders == nil {
		return GetDashboardQueryHandler{}, errs.NewValueIsRequiredError("orders")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return GetDashboardQueryHandler{
		orders:   orders,
		resolver: resolver,
		enricher: enricher,
		logger:   logger.With("component", "dashboard_query_handler"),
	}, nil
}

// Handle executes the dashboard pipeline.
// Rows keep the order the platform returned them in (creation time
// descending). An empty batch yields an empty response without any courier
// or product calls.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	start := time.Now()

	batch, err := h.orders.GetOrders(ctx, query.CreatedAtMin(), query.CreatedAtMax())
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}
	fetchDuration := time.Since(start)

	trackingNumbers := make([]string, 0, len(batch))
	for _, o := range batch {
		for _, f := range o.Fulfillments() {
			if f.TrackingNumber() != "" {
				trackingNumbers = append(trackingNumbers, f.TrackingNumber())
			}
		}
	}

	resolveStart := time.Now()
	statuses := h.resolver.Resolve(ctx, trackingNumbers)
	resolveDuration := time.Since(resolveStart)

	now := time.Now()
	rollup := services.NewRollup()
	rows := make([]EnrichedOrderResponse, 0, len(batch))
	for _, o := range batch {
		row, bucket := h.buildRow(ctx, o, statuses, now)

		if err := rollup.Observe(bucket, row.PendingSinceDays); err != nil {
			return GetDashboardQueryResponse{}, err
		}
		rows = append(rows, row)
	}

	totalDuration := time.Since(start)
	h.logger.InfoContext(ctx, "dashboard built",
		"orders", len(rows),
		"tracking_numbers", len(statuses),
		"fetch_ms", fetchDuration.Milliseconds(),
		"resolve_ms", resolveDuration.Milliseconds(),
		"total_ms", totalDuration.Milliseconds(),
	)

	return GetDashboardQueryResponse{
		Orders:            rows,
		PendingCount:      rollup.PendingCount(),
		DeliveredCount:    rollup.DeliveredCount(),
		UndeliveredCount:  rollup.UndeliveredCount(),
		ReturnedCount:     rollup.ReturnedCount(),
		OldestPendingDays: rollup.OldestPendingDays(),
		DeliveryRatio:     rollup.DeliveryRatio(),
		FetchDuration:     fetchDuration,
		ResolveDuration:   resolveDuration,
		TotalDuration:     totalDuration,
	}, nil
}

// buildRow projects one order into a dashboard row and its bucket.
// Classification reads the order's effective tracking number (last
// fulfillment wins); a tracking number missing from the resolved map reads
// as "Unknown".
func (h GetDashboardQueryHandler) buildRow(
	ctx context.Context,
	o order.Order,
	statuses map[string]string,
	now time.Time,
) (EnrichedOrderResponse, order.Bucket) {
	tracking := o.Tracking()

	var status, shippedVia string
	var bucket order.Bucket
	if tracking.HasTracking() {
		var ok bool
		status, ok = statuses[tracking.Number]
		if !ok {
			status = order.StatusUnknown
		}
		shippedVia = order.CourierCCS
		bucket = order.ClassifyStatus(status)
	} else {
		status = order.StatusPending
		shippedVia = order.CourierNone
		bucket = order.Pending
	}

	items := make([]EnrichedItemResponse, 0, len(o.LineItems()))
	for _, item := range h.enricher.EnrichItems(ctx, o) {
		items = append(items, EnrichedItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			ImageURL: item.ImageURL,
		})
	}

	return EnrichedOrderResponse{
		OrderNumber:      o.OrderNumber(),
		TrackingNumber:   tracking.Number,
		TrackingURL:      tracking.URL,
		OrderDate:        o.CreatedAt(),
		Price:            o.TotalPrice(),
		Items:            items,
		Status:           status,
		Bucket:           bucket.String(),
		PendingSinceDays: services.PendingSinceDays(o.CreatedAt(), now),
		OrderVia:         OrderViaShopify,
		ShippedVia:       shippedVia,
	}, bucket
}
