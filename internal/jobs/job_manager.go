package jobs

import (
	"fmt"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
)

// Schedules configures the scheduled jobs. Empty schedules use the defaults.
type Schedules struct {
	LowStockThreshold int
	LowStock          string
	Backlog           string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockAlertJob *LowStockAlertJob
	backlogReportJob *BacklogReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	detectLowStockHandler commands.DetectLowStockCommandHandler,
	orderMetricsHandler queries.GetOrderMetricsQueryHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockAlertJob: NewLowStockAlertJob(
			detectLowStockHandler, schedules.LowStockThreshold, schedules.LowStock, logger),
		backlogReportJob: NewBacklogReportJob(orderMetricsHandler, schedules.Backlog, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockAlertJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock alert job: %w", err)
	}

	if err := jm.backlogReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.lowStockAlertJob.Stop()
		return fmt.Errorf("failed to start backlog report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.backlogReportJob.Stop()
	jm.lowStockAlertJob.Stop()
}
