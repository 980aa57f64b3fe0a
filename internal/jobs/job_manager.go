package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	queueSnapshotJob *QueueSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the queues query handler as a dependency to wire up job execution.
func NewJobManager(
	getWarehouseQueuesHandler *queries.GetWarehouseQueuesQueryHandler,
	snapshotWarehouseIDs []kernel.UUID,
	snapshotSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		queueSnapshotJob: NewQueueSnapshotJob(
			getWarehouseQueuesHandler,
			snapshotWarehouseIDs,
			snapshotSchedule,
			logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.queueSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start queue snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.queueSnapshotJob.Stop()
}
