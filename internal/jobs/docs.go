// Package jobs provides scheduled background tasks for the dashboard service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dashboard.
//
// # Available Jobs
//
// 1. DashboardRefreshJob - Periodically precomputes the order-status
// dashboard and stores the snapshot for interactive requests.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dashboardHandler, cache, 48, "", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The refresh job uses a six-field cron expression with a leading seconds
// column; the default "0 */10 * * * *" runs every ten minutes. One refresh
// also runs immediately on start so the cache is warm before the first
// request.
//
// # Error Handling
//
// A failed refresh is logged and the previous snapshot stays in place, so a
// transient platform outage degrades freshness rather than availability.
package jobs
