package services

import (
	"context"
	"log/slog"
	"sync"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

// DefaultWorkerCount is the number of concurrent courier lookups a
// StatusResolver performs when no explicit worker count is configured.
const DefaultWorkerCount = 10

// StatusResolver fans a set of tracking numbers out to the courier on a
// bounded worker pool and fans the resolved statuses back into a single map.
//
// Its defining guarantee is per-item failure isolation: a failed lookup is
// recorded as the order.StatusError sentinel for that tracking number and can
// never abort the batch or lose results of lookups that succeeded. No ordering
// is guaranteed; the output map makes completion order irrelevant.
//
// Resolving the same tracking number in two separate calls may legitimately
// yield different statuses - shipment state moves between calls.
//
// Example:
//
//	resolver, _ := NewStatusResolver(courierClient, 0, logger)
//	statuses := resolver.Resolve(ctx, []string{"CC100", "CC200", "CC100"})
//	// statuses has exactly the keys "CC100" and "CC200"
type StatusResolver struct {
	client  ports.TrackingStatusProvider
	workers int
	logger  *slog.Logger
}

// NewStatusResolver creates a StatusResolver.
//
// Parameters:
//   - client: the courier lookup client (required)
//   - workers: the concurrency bound; values <= 0 select DefaultWorkerCount
//   - logger: receives one warning per isolated lookup failure; nil selects slog.Default
func NewStatusResolver(client ports.TrackingStatusProvider, workers int, logger *slog.Logger) (StatusResolver, error) {
	if client == nil {
		return StatusResolver{}, errs.NewValueIsRequiredError("client")
	}
	if workers <= 0 {
		workers = DefaultWorkerCount
	}
	if logger == nil {
		logger = slog.Default()
	}

	return StatusResolver{
		client:  client,
		workers: workers,
		logger:  logger.With("component", "status_resolver"),
	}, nil
}

// Resolve maps each distinct tracking number to its resolved status string.
//
// Duplicates are resolved once; blank entries are skipped (an order without a
// tracking number contributes nothing to the lookup set). An empty input
// returns an empty map without issuing any network calls. At most the
// configured number of lookups is in flight at any moment; excess tracking
// numbers queue until a worker is free. The call blocks until every submitted
// lookup has settled or failed.
func (r StatusResolver) Resolve(ctx context.Context, trackingNumbers []string) map[string]string {
	seen := make(map[string]struct{}, len(trackingNumbers))
	distinct := make([]string, 0, len(trackingNumbers))
	for _, tn := range trackingNumbers {
		if tn == "" {
			continue
		}
		if _, ok := seen[tn]; ok {
			continue
		}
		seen[tn] = struct{}{}
		distinct = append(distinct, tn)
	}

	statuses := make(map[string]string, len(distinct))
	if len(distinct) == 0 {
		return statuses
	}

	workers := r.workers
	if workers > len(distinct) {
		workers = len(distinct)
	}

	type lookupResult struct {
		trackingNumber string
		status         string
	}

	jobs := make(chan string)
	results := make(chan lookupResult)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for tn := range jobs {
				status, err := r.client.LookupStatus(ctx, tn)
				if err != nil {
					r.logger.WarnContext(ctx, "tracking lookup failed",
						"tracking_number", tn, "error", err)
					status = order.StatusError
				}
				results <- lookupResult{trackingNumber: tn, status: status}
			}
		}()
	}

	go func() {
		for _, tn := range distinct {
			jobs <- tn
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	for res := range results {
		statuses[res.trackingNumber] = res.status
	}

	return statuses
}
