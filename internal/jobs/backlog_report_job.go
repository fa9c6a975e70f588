package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultBacklogSchedule reports the backlog every five minutes.
const DefaultBacklogSchedule = "0 */5 * * * *"

// BacklogReportJob logs how many orders wait in each fulfillment status.
type BacklogReportJob struct {
	handler  queries.GetOrderMetricsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewBacklogReportJob(handler queries.GetOrderMetricsQueryHandler, schedule string, logger *slog.Logger) *BacklogReportJob {
	if schedule == "" {
		schedule = DefaultBacklogSchedule
	}
	return &BacklogReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "backlog_report_job"),
	}
}

func (j *BacklogReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return fmt.Errorf("invalid backlog schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog report job started", "schedule", j.schedule)
	return nil
}

// Run logs a single report.
func (j *BacklogReportJob) Run(ctx context.Context) {
	metrics, err := j.handler.Handle(ctx, queries.NewGetOrderMetricsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Backlog report failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Order backlog",
		"total", metrics.Total,
		"pending", metrics.ByStatus["pending"],
		"processing", metrics.ByStatus["processing"],
		"picked", metrics.ByStatus["picked"],
		"packed", metrics.ByStatus["packed"],
		"shipped", metrics.ByStatus["shipped"])
}

func (j *BacklogReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Backlog report job stopped")
}
