// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by warehouse operations.
//
// # Available Jobs
//
// 1. QueueSnapshotJob - Periodically re-runs classification for the configured
// warehouses and logs queue depths plus malformed-allocation anomalies. The log
// lines feed the operational dashboard.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the queues query handler
//	jobManager := jobs.NewJobManager(queuesHandler, warehouseIDs, schedule, logger)
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
// The snapshot schedule is a cron expression with a seconds field, taken from
// configuration (e.g. "0 * * * * *" for once a minute).
//
// # Error Handling
//
// The snapshot job is read-only: a failed run is logged and the next run
// proceeds as scheduled.
package jobs
