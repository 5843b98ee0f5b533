package jobs

import (
	"fmt"
	"log/slog"

	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/pkg/snapshot"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dashboardRefreshJob *DashboardRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the dashboard query handler and snapshot cache as dependencies.
func NewJobManager(
	dashboardHandler queries.GetDashboardQueryHandler,
	cache *snapshot.Cache[queries.GetDashboardQueryResponse],
	windowHours int,
	refreshSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dashboardRefreshJob: NewDashboardRefreshJob(dashboardHandler, cache, windowHours, refreshSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dashboardRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start dashboard refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dashboardRefreshJob.Stop()
}
