package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/pkg/snapshot"

	"github.com/robfig/cron/v3"
)

// DefaultRefreshSpec runs the dashboard refresh every ten minutes.
const DefaultRefreshSpec = "0 */10 * * * *"

// dashboardHandler is the slice of the dashboard use case the job needs.
type dashboardHandler interface {
	Handle(ctx context.Context, query queries.GetDashboardQuery) (queries.GetDashboardQueryResponse, error)
}

// DashboardRefreshJob precomputes the dashboard on a schedule and stores the
// result in the snapshot cache, so interactive requests do not pay the
// courier fan-out latency.
type DashboardRefreshJob struct {
	handler     dashboardHandler
	cache       *snapshot.Cache[queries.GetDashboardQueryResponse]
	windowHours int
	spec        string
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewDashboardRefreshJob creates a job refreshing the dashboard snapshot.
// An empty spec selects DefaultRefreshSpec; the spec uses six fields with a
// leading seconds column.
func NewDashboardRefreshJob(
	handler dashboardHandler,
	cache *snapshot.Cache[queries.GetDashboardQueryResponse],
	windowHours int,
	spec string,
	logger *slog.Logger,
) *DashboardRefreshJob {
	if spec == "" {
		spec = DefaultRefreshSpec
	}

	return &DashboardRefreshJob{
		handler:     handler,
		cache:       cache,
		windowHours: windowHours,
		spec:        spec,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "dashboard_refresh_job"),
	}
}

// Start schedules the refresh and runs one refresh immediately so the cache
// is warm before the first request.
func (j *DashboardRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, j.refresh)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dashboard refresh job started", "spec", j.spec)

	go j.refresh()
	return nil
}

// Stop stops the refresh job. A refresh already in flight finishes.
func (j *DashboardRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dashboard refresh job stopped")
}

// refresh computes one dashboard snapshot. A failed refresh keeps the
// previous snapshot in place.
func (j *DashboardRefreshJob) refresh() {
	ctx := context.Background()
	now := time.Now()

	query, err := queries.NewGetDashboardQuery(now.Add(-time.Duration(j.windowHours)*time.Hour), now)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dashboard refresh job failed to build query", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dashboard refresh job failed", "error", err)
		return
	}

	j.cache.Store(result, now)
	j.logger.InfoContext(ctx, "Dashboard snapshot refreshed",
		"orders", len(result.Orders), "total_ms", result.TotalDuration.Milliseconds())
}
