package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// QueueSnapshotJob periodically re-runs classification for the configured
// warehouses and logs queue depths and anomalies. The log lines feed the
// operational dashboard; the job never mutates state.
type QueueSnapshotJob struct {
	handler      *queries.GetWarehouseQueuesQueryHandler
	warehouseIDs []kernel.UUID
	schedule     string
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewQueueSnapshotJob creates a job that snapshots the given warehouses on the
// given cron schedule (with seconds field).
func NewQueueSnapshotJob(
	handler *queries.GetWarehouseQueuesQueryHandler,
	warehouseIDs []kernel.UUID,
	schedule string,
	logger *slog.Logger,
) *QueueSnapshotJob {
	return &QueueSnapshotJob{
		handler:      handler,
		warehouseIDs: warehouseIDs,
		schedule:     schedule,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "queue_snapshot_job"),
	}
}

// Start begins the queue snapshot job on its configured schedule.
func (j *QueueSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.snapshot)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue snapshot job started",
		"schedule", j.schedule, "warehouses", len(j.warehouseIDs))
	return nil
}

// Stop stops the queue snapshot job.
func (j *QueueSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue snapshot job stopped")
}

func (j *QueueSnapshotJob) snapshot() {
	ctx := context.Background()

	for _, warehouseID := range j.warehouseIDs {
		query, err := queries.NewGetWarehouseQueuesQuery(warehouseID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Queue snapshot skipped warehouse", "error", err)
			continue
		}

		queues, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Queue snapshot failed",
				"warehouse_id", warehouseID.String(), "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Queue snapshot",
			"warehouse_id", warehouseID.String(),
			"pending_main_warehouse", len(queues.PendingMainWarehouse),
			"notifications", len(queues.Notifications),
			"ready_for_delivery", len(queues.ReadyForDelivery),
			"completed", len(queues.Completed),
			"anomalies", len(queues.Anomalies),
		)
	}
}
